package dto

import "guest-portal-backend/internal/model"

type SubmitRequestPayload struct {
	TenantID   string `json:"tenantId"`
	ServiceID  string `json:"serviceId"`
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`
	TierID     string `json:"tierId,omitempty"`
	Date       string `json:"date,omitempty"`
	Time       string `json:"time,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status"`
}

type RequestListResponse struct {
	Requests []model.ServiceRequest `json:"requests"`
}
