package router

import (
	"net/http"
	"strings"

	"guest-portal-backend/internal/api"
	"guest-portal-backend/internal/api/endpoints"
	"guest-portal-backend/internal/api/middleware"
	"guest-portal-backend/internal/model"
)

// AdminRoutes wires the management surface: tenant, category, service, and
// request administration. Every route requires a staff token; mutations
// require an admin role.
func AdminRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		base := strings.TrimRight(prefix, "/")

		tenantEndpoints := endpoints.NewTenantEndpoints(s.Tenants(), base+"/tenants/")
		mux.HandleFunc(base+"/tenants", s.MakeHTTPHandleFunc(tenantEndpoints.Tenants, middleware.RequireAdmin))
		mux.HandleFunc(base+"/tenants/", s.MakeHTTPHandleFunc(tenantEndpoints.TenantByID, middleware.RequireAdmin))

		catalogEndpoints := endpoints.NewCatalogEndpoints(s.Categories(), s.Services(), endpoints.CatalogPaths{
			CategoryPrefix: base + "/categories/",
			ServicePrefix:  base + "/services/",
		})
		mux.HandleFunc(base+"/categories", s.MakeHTTPHandleFunc(catalogEndpoints.Categories, middleware.RequireAdmin))
		mux.HandleFunc(base+"/categories/", s.MakeHTTPHandleFunc(catalogEndpoints.CategoryByID, middleware.RequireAdmin))
		mux.HandleFunc(base+"/services", s.MakeHTTPHandleFunc(catalogEndpoints.Services, middleware.RequireAdmin))
		mux.HandleFunc(base+"/services/", s.MakeHTTPHandleFunc(catalogEndpoints.ServiceByID, middleware.RequireAdmin))

		requestEndpoints := endpoints.NewRequestEndpoints(s.Requests(), base+"/requests/")
		mux.HandleFunc(base+"/requests", s.MakeHTTPHandleFunc(requestEndpoints.Requests, middleware.RequireAnyStaff))
		mux.HandleFunc(base+"/requests/", s.MakeHTTPHandleFunc(requestEndpoints.RequestStatus, middleware.RequireAdmin))
	}
}

// DevRoutes exposes seed tooling. The seeder itself refuses to run outside
// dev mode, so these stay registered unconditionally.
func DevRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		base := strings.TrimRight(prefix, "/")
		devEndpoints := endpoints.NewDevEndpoints(s.Seeder())
		mux.HandleFunc(base+"/dev/seed", s.MakeHTTPHandleFunc(devEndpoints.Seed, middleware.RequireRole(model.RoleSuperAdmin)))
		mux.HandleFunc(base+"/dev/reset", s.MakeHTTPHandleFunc(devEndpoints.Reset, middleware.RequireRole(model.RoleSuperAdmin)))
	}
}
