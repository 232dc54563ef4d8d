package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"guest-portal-backend/internal/env"
)

func TestHealth(t *testing.T) {
	t.Setenv(env.DocstoreBackend, "memory")
	handler := NewUtilsEndpoints()

	rec := httptest.NewRecorder()
	if err := handler.Health(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/health", nil)); err != nil {
		t.Fatalf("health: %v", err)
	}

	var resp healthResponse
	decodeBody(t, rec, &resp)
	if resp.Status != "ok" || resp.Backend != "memory" {
		t.Fatalf("health = %#v", resp)
	}
}
