package router

import (
	"net/http"
	"strings"

	"guest-portal-backend/internal/api"
	"guest-portal-backend/internal/api/endpoints"
)

// WebsocketRoutes wires the live snapshot feeds.
func WebsocketRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		base := strings.TrimRight(prefix, "/")

		wsEndpoints := endpoints.NewWSEndpoints(s.Handler(), base+"/feeds/")
		mux.HandleFunc(base+"/feeds/", s.MakeHTTPHandleFunc(wsEndpoints.Feed))
		mux.HandleFunc(base+"/rooms", s.MakeHTTPHandleFunc(wsEndpoints.Rooms))
	}
}
