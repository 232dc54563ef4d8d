package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/dto"
	"guest-portal-backend/internal/model"
)

type RequestEndpoints interface {
	Requests(http.ResponseWriter, *http.Request) error
	RequestStatus(http.ResponseWriter, *http.Request) error
	// Submit is the guest-facing subset: create only, no listing.
	Submit(http.ResponseWriter, *http.Request) error
}

type requestEndpoints struct {
	requests *collections.Requests
	// statusPrefix is stripped off the path to recover "<id>/status".
	statusPrefix string
}

func NewRequestEndpoints(requests *collections.Requests, statusPrefix string) RequestEndpoints {
	return &requestEndpoints{requests: requests, statusPrefix: statusPrefix}
}

func (h *requestEndpoints) Requests(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet:  h.handleListRequests,
		http.MethodPost: h.handleSubmitRequest,
	})
}

func (h *requestEndpoints) Submit(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleSubmitRequest,
	})
}

func (h *requestEndpoints) RequestStatus(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPatch: h.handleUpdateStatus,
	})
}

func (h *requestEndpoints) handleListRequests(w http.ResponseWriter, r *http.Request) error {
	tenantID := r.URL.Query().Get("tenantId")
	requests, err := h.requests.List(r.Context(), tenantID)
	if err != nil {
		return internalError(err)
	}
	return WriteJSON(w, http.StatusOK, dto.RequestListResponse{Requests: requests})
}

func (h *requestEndpoints) handleSubmitRequest(w http.ResponseWriter, r *http.Request) error {
	var req dto.SubmitRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid request payload", fmt.Errorf("decode submit request: %w", err))
	}
	if req.GuestName == "" {
		return badRequest("Guest name is required", fmt.Errorf("submit request: empty guest name"))
	}
	if req.ServiceID == "" {
		return badRequest("Service id is required", fmt.Errorf("submit request: empty serviceId"))
	}

	request, err := h.requests.Submit(r.Context(), collections.SubmitRequestParams{
		TenantID:   req.TenantID,
		ServiceID:  req.ServiceID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		TierID:     req.TierID,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
	})
	if err != nil {
		if errors.Is(err, collections.ErrServiceNotFound) {
			return notFound("Service not found", err)
		}
		return internalError(err)
	}

	return WriteJSON(w, http.StatusCreated, request)
}

func (h *requestEndpoints) handleUpdateStatus(w http.ResponseWriter, r *http.Request) error {
	id := h.requestID(r)
	if id == "" {
		return badRequest("Missing request id", fmt.Errorf("update status: empty id in path %s", r.URL.Path))
	}

	var req dto.UpdateRequestStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid request payload", fmt.Errorf("decode update status request: %w", err))
	}

	status := model.RequestStatus(req.Status)
	if !status.Valid() {
		return badRequest("Unknown status", fmt.Errorf("update status: %q", req.Status))
	}

	if err := h.requests.UpdateStatus(r.Context(), id, status); err != nil {
		return storeError("Request not found", err)
	}
	return WriteJSON(w, http.StatusOK, ApiMessageResponse{Message: "Status updated"})
}

// requestID recovers the id from paths shaped like <statusPrefix><id>/status.
func (h *requestEndpoints) requestID(r *http.Request) string {
	trimmed := pathID(r, h.statusPrefix)
	return strings.Trim(strings.TrimSuffix(trimmed, "status"), "/")
}
