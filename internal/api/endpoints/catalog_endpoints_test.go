package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/dto"
	"guest-portal-backend/internal/model"
)

func newCatalogHandler(store docstore.Store) CatalogEndpoints {
	return NewCatalogEndpoints(
		collections.NewCategories(store),
		collections.NewServices(store),
		CatalogPaths{
			CategoryPrefix: "/api/admin/v1/categories/",
			ServicePrefix:  "/api/admin/v1/services/",
		},
	)
}

func TestCreateAndListCategories(t *testing.T) {
	store := docstore.NewMemoryStore()
	handler := newCatalogHandler(store)

	rec := httptest.NewRecorder()
	req := jsonRequest(t, http.MethodPost, "/api/admin/v1/categories", dto.CreateCategoryRequest{
		Name:  model.LocalizedText{EN: "Transport", BS: "Prevoz"},
		Icon:  "car",
		Order: 1,
	})
	if err := handler.Categories(rec, req); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	var created model.ServiceCategory
	decodeBody(t, rec, &created)
	if created.ID == "" || !created.Active {
		t.Fatalf("created = %#v", created)
	}

	rec = httptest.NewRecorder()
	if err := handler.Categories(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/categories", nil)); err != nil {
		t.Fatalf("list: %v", err)
	}
	var list dto.CategoryListResponse
	decodeBody(t, rec, &list)
	if len(list.Categories) != 1 || list.Categories[0].Name.BS != "Prevoz" {
		t.Fatalf("list = %#v", list)
	}
}

func TestCreateCategoryRequiresName(t *testing.T) {
	handler := newCatalogHandler(docstore.NewMemoryStore())

	err := handler.Categories(httptest.NewRecorder(), jsonRequest(t, http.MethodPost, "/api/admin/v1/categories", dto.CreateCategoryRequest{Icon: "car"}))
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}
}

func TestUpdateCategoryNotFound(t *testing.T) {
	handler := newCatalogHandler(docstore.NewMemoryStore())

	icon := "spa"
	err := handler.CategoryByID(httptest.NewRecorder(), jsonRequest(t, http.MethodPatch, "/api/admin/v1/categories/no-such-id", dto.UpdateCategoryRequest{Icon: &icon}))
	if got := httpStatus(t, err); got != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", got)
	}
}

func TestCreateServiceValidation(t *testing.T) {
	handler := newCatalogHandler(docstore.NewMemoryStore())

	// Missing tenant id.
	err := handler.Services(httptest.NewRecorder(), jsonRequest(t, http.MethodPost, "/api/admin/v1/services", dto.CreateServiceRequest{
		Name:        model.LocalizedText{EN: "Spa"},
		PricingType: "fixed",
	}))
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Fatalf("missing tenant status = %d", got)
	}

	// Unknown pricing type.
	err = handler.Services(httptest.NewRecorder(), jsonRequest(t, http.MethodPost, "/api/admin/v1/services", dto.CreateServiceRequest{
		TenantID:    "tenant-a",
		Name:        model.LocalizedText{EN: "Spa"},
		PricingType: "subscription",
	}))
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Fatalf("pricing type status = %d", got)
	}
}

func TestServiceLifecycle(t *testing.T) {
	store := docstore.NewMemoryStore()
	handler := newCatalogHandler(store)

	price := 55.0
	rec := httptest.NewRecorder()
	req := jsonRequest(t, http.MethodPost, "/api/admin/v1/services", dto.CreateServiceRequest{
		TenantID:    "tenant-a",
		CategoryID:  "cat-wellness",
		Name:        model.LocalizedText{EN: "Spa Day", BS: "Spa dan"},
		PricingType: "fixed",
		Price:       &price,
		Currency:    "BAM",
		Tiers: []model.ServiceTier{
			{ID: "tier-couples", Name: model.LocalizedText{EN: "Couples"}, Badge: "popular"},
		},
	})
	if err := handler.Services(rec, req); err != nil {
		t.Fatalf("create: %v", err)
	}
	var created model.Service
	decodeBody(t, rec, &created)
	if created.ID == "" || len(created.Tiers) != 1 {
		t.Fatalf("created = %#v", created)
	}

	rec = httptest.NewRecorder()
	if err := handler.ServiceByID(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/services/"+created.ID, nil)); err != nil {
		t.Fatalf("get: %v", err)
	}
	var fetched model.Service
	decodeBody(t, rec, &fetched)
	if fetched.Name.BS != "Spa dan" || fetched.Tiers[0].Badge != "popular" {
		t.Fatalf("fetched = %#v", fetched)
	}

	featured := true
	rec = httptest.NewRecorder()
	req = jsonRequest(t, http.MethodPatch, "/api/admin/v1/services/"+created.ID, dto.UpdateServiceRequest{Featured: &featured})
	if err := handler.ServiceByID(rec, req); err != nil {
		t.Fatalf("update: %v", err)
	}

	rec = httptest.NewRecorder()
	if err := handler.ServiceByID(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/services/"+created.ID, nil)); err != nil {
		t.Fatalf("reload: %v", err)
	}
	decodeBody(t, rec, &fetched)
	if !fetched.Featured || fetched.Price == nil || *fetched.Price != 55 {
		t.Fatalf("partial update broke fields: %#v", fetched)
	}

	rec = httptest.NewRecorder()
	if err := handler.ServiceByID(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/v1/services/"+created.ID, nil)); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	err := handler.ServiceByID(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/admin/v1/services/"+created.ID, nil))
	if got := httpStatus(t, err); got != http.StatusNotFound {
		t.Fatalf("deleted service status = %d, want 404", got)
	}
}

func TestListServicesByTenant(t *testing.T) {
	store := docstore.NewMemoryStore()
	handler := newCatalogHandler(store)

	seedActiveService(t, store, "tenant-a", "cat-1")
	seedActiveService(t, store, "tenant-b", "cat-1")

	rec := httptest.NewRecorder()
	if err := handler.Services(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/services?tenantId=tenant-a", nil)); err != nil {
		t.Fatalf("list: %v", err)
	}
	var list dto.ServiceListResponse
	decodeBody(t, rec, &list)
	if len(list.Services) != 1 || list.Services[0].TenantID != "tenant-a" {
		t.Fatalf("filtered list = %#v", list.Services)
	}
}
