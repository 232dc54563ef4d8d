package endpoints

import (
	"errors"
	"fmt"
	"net/http"

	"guest-portal-backend/internal/collections"
)

// DevEndpoints exposes the seed tooling over HTTP. Both operations refuse to
// run outside dev mode.
type DevEndpoints interface {
	Seed(http.ResponseWriter, *http.Request) error
	Reset(http.ResponseWriter, *http.Request) error
}

type devEndpoints struct {
	seeder *collections.Seeder
}

func NewDevEndpoints(seeder *collections.Seeder) DevEndpoints {
	return &devEndpoints{seeder: seeder}
}

func (h *devEndpoints) Seed(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleSeed,
	})
}

func (h *devEndpoints) Reset(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleReset,
	})
}

func (h *devEndpoints) handleSeed(w http.ResponseWriter, r *http.Request) error {
	if err := h.seeder.Seed(r.Context()); err != nil {
		return seedError(err)
	}
	return WriteJSON(w, http.StatusOK, ApiMessageResponse{Message: "Seed complete"})
}

func (h *devEndpoints) handleReset(w http.ResponseWriter, r *http.Request) error {
	if err := h.seeder.Reset(r.Context()); err != nil {
		return seedError(err)
	}
	return WriteJSON(w, http.StatusOK, ApiMessageResponse{Message: "Reset complete"})
}

func seedError(err error) error {
	if errors.Is(err, collections.ErrSeedDisabled) {
		return &HTTPError{
			StatusCode: http.StatusForbidden,
			Message:    "Seeding is only available in dev mode",
			ErrorLog:   fmt.Errorf("seed endpoint: %w", err),
		}
	}
	return internalError(err)
}
