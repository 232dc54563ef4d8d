package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/model"
)

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	return httptest.NewRequest(method, target, &body)
}

// httpStatus unwraps the status a handler error would be served with.
func httpStatus(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		t.Fatal("expected a handler error")
	}
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error is not an HTTPError: %v", err)
	}
	return httpErr.StatusCode
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func seedActiveTenant(t *testing.T, store docstore.Store, slug string) *model.Tenant {
	t.Helper()
	tenant, err := collections.NewTenants(store).Create(context.Background(), collections.CreateTenantParams{
		Slug:   slug,
		Name:   "Villa Vista",
		Active: true,
	})
	if err != nil {
		t.Fatalf("seed tenant: %v", err)
	}
	return tenant
}

func seedActiveService(t *testing.T, store docstore.Store, tenantID, categoryID string) *model.Service {
	t.Helper()
	price := 35.0
	service, err := collections.NewServices(store).Create(context.Background(), collections.CreateServiceParams{
		TenantID:    tenantID,
		CategoryID:  categoryID,
		Name:        model.LocalizedText{EN: "Airport Transfer", BS: "Prevoz do aerodroma"},
		PricingType: model.PricingFixed,
		Price:       &price,
		Currency:    "BAM",
		Active:      true,
	})
	if err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return service
}

func seedActiveCategory(t *testing.T, store docstore.Store, name string, order int) *model.ServiceCategory {
	t.Helper()
	category, err := collections.NewCategories(store).Create(context.Background(), collections.CreateCategoryParams{
		Name:   model.LocalizedText{EN: name},
		Order:  order,
		Active: true,
	})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}
