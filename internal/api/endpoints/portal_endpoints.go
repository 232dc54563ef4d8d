package endpoints

import (
	"fmt"
	"net/http"

	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/dto"
	"guest-portal-backend/internal/model"
)

// PortalEndpoints serves the unauthenticated guest-facing portal page.
type PortalEndpoints interface {
	Portal(http.ResponseWriter, *http.Request) error
}

type portalEndpoints struct {
	tenants    *collections.Tenants
	categories *collections.Categories
	services   *collections.Services
	// slugPrefix is stripped off the path to recover the tenant slug.
	slugPrefix string
}

func NewPortalEndpoints(tenants *collections.Tenants, categories *collections.Categories, services *collections.Services, slugPrefix string) PortalEndpoints {
	return &portalEndpoints{
		tenants:    tenants,
		categories: categories,
		services:   services,
		slugPrefix: slugPrefix,
	}
}

func (h *portalEndpoints) Portal(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handlePortal,
	})
}

func (h *portalEndpoints) handlePortal(w http.ResponseWriter, r *http.Request) error {
	slug := pathID(r, h.slugPrefix)
	if slug == "" {
		return badRequest("Missing portal slug", fmt.Errorf("portal: empty slug in path %s", r.URL.Path))
	}

	tenant, err := h.tenants.GetBySlug(r.Context(), slug)
	if err != nil {
		return internalError(err)
	}
	if tenant == nil || !tenant.Active {
		return notFound("This portal does not exist", fmt.Errorf("portal: no active tenant for slug %q", slug))
	}

	services, err := h.services.ListByTenant(r.Context(), tenant.ID)
	if err != nil {
		return internalError(err)
	}

	active := make([]model.Service, 0, len(services))
	usedCategories := map[string]bool{}
	for _, service := range services {
		if !service.Active {
			continue
		}
		active = append(active, service)
		usedCategories[service.CategoryID] = true
	}

	categories, err := h.categories.List(r.Context())
	if err != nil {
		return internalError(err)
	}

	// Only categories actually referenced by an active service are shown.
	inUse := make([]model.ServiceCategory, 0, len(categories))
	for _, category := range categories {
		if category.Active && usedCategories[category.ID] {
			inUse = append(inUse, category)
		}
	}

	return WriteJSON(w, http.StatusOK, dto.PortalResponse{
		Tenant:     *tenant,
		Services:   active,
		Categories: inUse,
	})
}
