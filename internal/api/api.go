package api

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"guest-portal-backend/internal/auth"
	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/queue"
	"guest-portal-backend/internal/websocket"
)

type RouteRegistrar func(mux *http.ServeMux, s *APIServer)

type APIServer struct {
	listenAddr          string
	requestQueueManager *queue.RequestQueueManager
	store               docstore.Store
	users               *auth.Directory
	handler             *websocket.Handler
	routeRegistrars     []RouteRegistrar
	metrics             *metrics

	tenants    *collections.Tenants
	categories *collections.Categories
	services   *collections.Services
	requests   *collections.Requests
	seeder     *collections.Seeder
}

func NewAPIServer(listenAddr string, rqm *queue.RequestQueueManager, store docstore.Store, users *auth.Directory, handler *websocket.Handler, registrars ...RouteRegistrar) *APIServer {

	return &APIServer{
		listenAddr:          listenAddr,
		requestQueueManager: rqm,
		store:               store,
		users:               users,
		handler:             handler,
		routeRegistrars:     registrars,
		metrics:             newMetrics(prometheus.DefaultRegisterer, listenAddr, rqm),
		tenants:             collections.NewTenants(store),
		categories:          collections.NewCategories(store),
		services:            collections.NewServices(store),
		requests:            collections.NewRequests(store),
		seeder:              collections.NewSeeder(store),
	}
}

func (s *APIServer) Run() {
	mux := http.NewServeMux()

	for _, reg := range s.routeRegistrars {
		reg(mux, s)
	}

	mux.Handle("/metrics", s.metrics.metricsHandler())

	fmt.Printf("Server listening on http://localhost%s\n", s.listenAddr)

	if err := http.ListenAndServe(s.listenAddr, s.metrics.instrument(mux)); err != nil {
		fmt.Printf("server stopped: %v\n", err)
	}
}

func (s *APIServer) Store() docstore.Store {
	return s.store
}

func (s *APIServer) Users() *auth.Directory {
	return s.users
}

func (s *APIServer) Handler() *websocket.Handler {
	return s.handler
}

func (s *APIServer) Tenants() *collections.Tenants {
	return s.tenants
}

func (s *APIServer) Categories() *collections.Categories {
	return s.categories
}

func (s *APIServer) Services() *collections.Services {
	return s.services
}

func (s *APIServer) Requests() *collections.Requests {
	return s.requests
}

func (s *APIServer) Seeder() *collections.Seeder {
	return s.seeder
}
