package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/dto"
)

type TenantEndpoints interface {
	Tenants(http.ResponseWriter, *http.Request) error
	TenantByID(http.ResponseWriter, *http.Request) error
}

type tenantEndpoints struct {
	tenants *collections.Tenants
	// idPrefix is the route prefix stripped off r.URL.Path to recover the id.
	idPrefix string
}

func NewTenantEndpoints(tenants *collections.Tenants, idPrefix string) TenantEndpoints {
	return &tenantEndpoints{tenants: tenants, idPrefix: idPrefix}
}

func (h *tenantEndpoints) Tenants(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet:  h.handleListTenants,
		http.MethodPost: h.handleCreateTenant,
	})
}

func (h *tenantEndpoints) TenantByID(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPatch:  h.handleUpdateTenant,
		http.MethodDelete: h.handleDeleteTenant,
	})
}

func (h *tenantEndpoints) handleListTenants(w http.ResponseWriter, r *http.Request) error {
	tenants, err := h.tenants.List(r.Context())
	if err != nil {
		return internalError(err)
	}
	return WriteJSON(w, http.StatusOK, dto.TenantListResponse{Tenants: tenants})
}

func (h *tenantEndpoints) handleCreateTenant(w http.ResponseWriter, r *http.Request) error {
	var req dto.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid request payload", fmt.Errorf("decode create tenant request: %w", err))
	}
	if req.Slug == "" || req.Name == "" {
		return badRequest("Slug and name are required", fmt.Errorf("create tenant: missing slug or name"))
	}

	params := collections.CreateTenantParams{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if req.Branding != nil {
		params.Branding = *req.Branding
	}
	if req.Contact != nil {
		params.Contact = *req.Contact
	}
	if req.Active != nil {
		params.Active = *req.Active
	}

	tenant, err := h.tenants.Create(r.Context(), params)
	if err != nil {
		if strings.Contains(err.Error(), "already in use") {
			return &HTTPError{
				StatusCode: http.StatusConflict,
				Message:    "A tenant with this slug already exists",
				ErrorLog:   err,
			}
		}
		return internalError(err)
	}

	return WriteJSON(w, http.StatusCreated, tenant)
}

func (h *tenantEndpoints) handleUpdateTenant(w http.ResponseWriter, r *http.Request) error {
	id := h.tenantID(r)
	if id == "" {
		return badRequest("Missing tenant id", fmt.Errorf("update tenant: empty id in path %s", r.URL.Path))
	}

	var req dto.UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid request payload", fmt.Errorf("decode update tenant request: %w", err))
	}

	err := h.tenants.Update(r.Context(), id, collections.TenantUpdate{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		Branding:    req.Branding,
		Contact:     req.Contact,
		Active:      req.Active,
	})
	if err != nil {
		return storeError("Tenant not found", err)
	}

	return WriteJSON(w, http.StatusOK, ApiMessageResponse{Message: "Tenant updated"})
}

func (h *tenantEndpoints) handleDeleteTenant(w http.ResponseWriter, r *http.Request) error {
	id := h.tenantID(r)
	if id == "" {
		return badRequest("Missing tenant id", fmt.Errorf("delete tenant: empty id in path %s", r.URL.Path))
	}

	if err := h.tenants.Delete(r.Context(), id); err != nil {
		return storeError("Tenant not found", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *tenantEndpoints) tenantID(r *http.Request) string {
	return pathID(r, h.idPrefix)
}
