package endpoints

import (
	"net/http"
	"time"

	"guest-portal-backend/internal/env"
)

type UtilsEndpoints interface {
	Root(http.ResponseWriter, *http.Request) error
	Health(http.ResponseWriter, *http.Request) error
}

type utilsEndpoints struct {
	startedAt time.Time
}

func NewUtilsEndpoints() UtilsEndpoints {
	return &utilsEndpoints{startedAt: time.Now()}
}

// Root catches everything under the prefix that no other route claimed.
func (h *utilsEndpoints) Root(w http.ResponseWriter, r *http.Request) error {
	return WriteJSON(w, http.StatusOK, map[string]string{"service": "guest-portal"})
}

type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Uptime  string `json:"uptime"`
}

func (h *utilsEndpoints) Health(w http.ResponseWriter, r *http.Request) error {
	return WriteJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Backend: env.GetOrDefault(env.DocstoreBackend, "memory"),
		Uptime:  time.Since(h.startedAt).Round(time.Second).String(),
	})
}
