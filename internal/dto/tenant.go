package dto

import "guest-portal-backend/internal/model"

type CreateTenantRequest struct {
	Slug        string               `json:"slug"`
	Name        string               `json:"name"`
	Description *model.LocalizedText `json:"description,omitempty"`
	Branding    *model.Branding      `json:"branding,omitempty"`
	Contact     *model.ContactInfo   `json:"contact,omitempty"`
	Active      *bool                `json:"active,omitempty"`
}

// UpdateTenantRequest is a partial update; absent fields stay untouched.
type UpdateTenantRequest struct {
	Slug        *string              `json:"slug,omitempty"`
	Name        *string              `json:"name,omitempty"`
	Description *model.LocalizedText `json:"description,omitempty"`
	Branding    *model.Branding      `json:"branding,omitempty"`
	Contact     *model.ContactInfo   `json:"contact,omitempty"`
	Active      *bool                `json:"active,omitempty"`
}

type TenantListResponse struct {
	Tenants []model.Tenant `json:"tenants"`
}
