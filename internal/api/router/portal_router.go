package router

import (
	"net/http"
	"strings"

	"guest-portal-backend/internal/api"
	"guest-portal-backend/internal/api/endpoints"
)

// PortalRoutes wires the unauthenticated guest surface: the portal page
// lookup by slug and request submission.
func PortalRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		base := strings.TrimRight(prefix, "/")

		portalEndpoints := endpoints.NewPortalEndpoints(s.Tenants(), s.Categories(), s.Services(), base+"/portal/")
		mux.HandleFunc(base+"/portal/", s.MakeHTTPHandleFunc(portalEndpoints.Portal))

		requestEndpoints := endpoints.NewRequestEndpoints(s.Requests(), base+"/requests/")
		mux.HandleFunc(base+"/requests", s.MakeHTTPHandleFunc(requestEndpoints.Submit))
	}
}
