package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/dto"
	"guest-portal-backend/internal/model"
)

// CatalogPaths configures the route prefixes that carry entity ids.
type CatalogPaths struct {
	CategoryPrefix string
	ServicePrefix  string
}

type CatalogEndpoints interface {
	Categories(http.ResponseWriter, *http.Request) error
	CategoryByID(http.ResponseWriter, *http.Request) error
	Services(http.ResponseWriter, *http.Request) error
	ServiceByID(http.ResponseWriter, *http.Request) error
}

type catalogEndpoints struct {
	categories *collections.Categories
	services   *collections.Services
	paths      CatalogPaths
}

func NewCatalogEndpoints(categories *collections.Categories, services *collections.Services, paths CatalogPaths) CatalogEndpoints {
	return &catalogEndpoints{
		categories: categories,
		services:   services,
		paths:      paths,
	}
}

func (h *catalogEndpoints) Categories(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet:  h.handleListCategories,
		http.MethodPost: h.handleCreateCategory,
	})
}

func (h *catalogEndpoints) CategoryByID(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPatch:  h.handleUpdateCategory,
		http.MethodDelete: h.handleDeleteCategory,
	})
}

func (h *catalogEndpoints) Services(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet:  h.handleListServices,
		http.MethodPost: h.handleCreateService,
	})
}

func (h *catalogEndpoints) ServiceByID(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet:    h.handleGetService,
		http.MethodPatch:  h.handleUpdateService,
		http.MethodDelete: h.handleDeleteService,
	})
}

func (h *catalogEndpoints) handleListCategories(w http.ResponseWriter, r *http.Request) error {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		return internalError(err)
	}
	return WriteJSON(w, http.StatusOK, dto.CategoryListResponse{Categories: categories})
}

func (h *catalogEndpoints) handleCreateCategory(w http.ResponseWriter, r *http.Request) error {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid request payload", fmt.Errorf("decode create category request: %w", err))
	}
	if req.Name.IsZero() {
		return badRequest("Category name is required", fmt.Errorf("create category: empty name"))
	}

	params := collections.CreateCategoryParams{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
		Active:      true,
	}
	if req.Active != nil {
		params.Active = *req.Active
	}

	category, err := h.categories.Create(r.Context(), params)
	if err != nil {
		return internalError(err)
	}
	return WriteJSON(w, http.StatusCreated, category)
}

func (h *catalogEndpoints) handleUpdateCategory(w http.ResponseWriter, r *http.Request) error {
	id := pathID(r, h.paths.CategoryPrefix)
	if id == "" {
		return badRequest("Missing category id", fmt.Errorf("update category: empty id in path %s", r.URL.Path))
	}

	var req dto.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid request payload", fmt.Errorf("decode update category request: %w", err))
	}

	err := h.categories.Update(r.Context(), id, collections.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
		Active:      req.Active,
	})
	if err != nil {
		return storeError("Category not found", err)
	}
	return WriteJSON(w, http.StatusOK, ApiMessageResponse{Message: "Category updated"})
}

func (h *catalogEndpoints) handleDeleteCategory(w http.ResponseWriter, r *http.Request) error {
	id := pathID(r, h.paths.CategoryPrefix)
	if id == "" {
		return badRequest("Missing category id", fmt.Errorf("delete category: empty id in path %s", r.URL.Path))
	}
	if err := h.categories.Delete(r.Context(), id); err != nil {
		return storeError("Category not found", err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *catalogEndpoints) handleListServices(w http.ResponseWriter, r *http.Request) error {
	tenantID := r.URL.Query().Get("tenantId")

	var (
		services []model.Service
		err      error
	)
	if tenantID != "" {
		services, err = h.services.ListByTenant(r.Context(), tenantID)
	} else {
		services, err = h.services.List(r.Context())
	}
	if err != nil {
		return internalError(err)
	}
	return WriteJSON(w, http.StatusOK, dto.ServiceListResponse{Services: services})
}

func (h *catalogEndpoints) handleCreateService(w http.ResponseWriter, r *http.Request) error {
	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid request payload", fmt.Errorf("decode create service request: %w", err))
	}
	if req.TenantID == "" {
		return badRequest("Tenant id is required", fmt.Errorf("create service: empty tenantId"))
	}
	if req.Name.IsZero() {
		return badRequest("Service name is required", fmt.Errorf("create service: empty name"))
	}

	pricingType := model.PricingType(req.PricingType)
	if !pricingType.Valid() {
		return badRequest("Unknown pricing type", fmt.Errorf("create service: pricing type %q", req.PricingType))
	}

	params := collections.CreateServiceParams{
		TenantID:    req.TenantID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ShortDesc:   req.ShortDesc,
		ImageURL:    req.ImageURL,
		PricingType: pricingType,
		Price:       req.Price,
		Currency:    req.Currency,
		Tiers:       req.Tiers,
		Active:      true,
		Featured:    req.Featured,
		Order:       req.Order,
	}
	if req.Active != nil {
		params.Active = *req.Active
	}

	service, err := h.services.Create(r.Context(), params)
	if err != nil {
		return internalError(err)
	}
	return WriteJSON(w, http.StatusCreated, service)
}

func (h *catalogEndpoints) handleGetService(w http.ResponseWriter, r *http.Request) error {
	id := pathID(r, h.paths.ServicePrefix)
	if id == "" {
		return badRequest("Missing service id", fmt.Errorf("get service: empty id in path %s", r.URL.Path))
	}

	service, err := h.services.GetByID(r.Context(), id)
	if err != nil {
		return internalError(err)
	}
	if service == nil {
		return notFound("Service not found", fmt.Errorf("get service: %s missing", id))
	}
	return WriteJSON(w, http.StatusOK, service)
}

func (h *catalogEndpoints) handleUpdateService(w http.ResponseWriter, r *http.Request) error {
	id := pathID(r, h.paths.ServicePrefix)
	if id == "" {
		return badRequest("Missing service id", fmt.Errorf("update service: empty id in path %s", r.URL.Path))
	}

	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid request payload", fmt.Errorf("decode update service request: %w", err))
	}

	upd := collections.ServiceUpdate{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ShortDesc:   req.ShortDesc,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Currency:    req.Currency,
		Tiers:       req.Tiers,
		Active:      req.Active,
		Featured:    req.Featured,
		Order:       req.Order,
	}
	if req.PricingType != nil {
		pricingType := model.PricingType(*req.PricingType)
		if !pricingType.Valid() {
			return badRequest("Unknown pricing type", fmt.Errorf("update service: pricing type %q", *req.PricingType))
		}
		upd.PricingType = &pricingType
	}

	if err := h.services.Update(r.Context(), id, upd); err != nil {
		return storeError("Service not found", err)
	}
	return WriteJSON(w, http.StatusOK, ApiMessageResponse{Message: "Service updated"})
}

func (h *catalogEndpoints) handleDeleteService(w http.ResponseWriter, r *http.Request) error {
	id := pathID(r, h.paths.ServicePrefix)
	if id == "" {
		return badRequest("Missing service id", fmt.Errorf("delete service: empty id in path %s", r.URL.Path))
	}
	if err := h.services.Delete(r.Context(), id); err != nil {
		return storeError("Service not found", err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func pathID(r *http.Request, prefix string) string {
	trimmed := strings.TrimPrefix(r.URL.Path, prefix)
	return strings.Trim(trimmed, "/")
}
