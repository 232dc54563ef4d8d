package dto

import "guest-portal-backend/internal/model"

type CreateCategoryRequest struct {
	Name        model.LocalizedText  `json:"name"`
	Description *model.LocalizedText `json:"description,omitempty"`
	Icon        string               `json:"icon"`
	Order       int                  `json:"order"`
	Active      *bool                `json:"active,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *model.LocalizedText `json:"name,omitempty"`
	Description *model.LocalizedText `json:"description,omitempty"`
	Icon        *string              `json:"icon,omitempty"`
	Order       *int                 `json:"order,omitempty"`
	Active      *bool                `json:"active,omitempty"`
}

type CategoryListResponse struct {
	Categories []model.ServiceCategory `json:"categories"`
}

type CreateServiceRequest struct {
	TenantID    string               `json:"tenantId"`
	CategoryID  string               `json:"categoryId"`
	Name        model.LocalizedText  `json:"name"`
	Description model.LocalizedText  `json:"description"`
	ShortDesc   *model.LocalizedText `json:"shortDescription,omitempty"`
	ImageURL    string               `json:"imageUrl,omitempty"`
	PricingType string               `json:"pricingType"`
	Price       *float64             `json:"price,omitempty"`
	Currency    string               `json:"currency,omitempty"`
	Tiers       []model.ServiceTier  `json:"tiers,omitempty"`
	Active      *bool                `json:"active,omitempty"`
	Featured    bool                 `json:"featured,omitempty"`
	Order       int                  `json:"order,omitempty"`
}

type UpdateServiceRequest struct {
	CategoryID  *string              `json:"categoryId,omitempty"`
	Name        *model.LocalizedText `json:"name,omitempty"`
	Description *model.LocalizedText `json:"description,omitempty"`
	ShortDesc   *model.LocalizedText `json:"shortDescription,omitempty"`
	ImageURL    *string              `json:"imageUrl,omitempty"`
	PricingType *string              `json:"pricingType,omitempty"`
	Price       *float64             `json:"price,omitempty"`
	Currency    *string              `json:"currency,omitempty"`
	Tiers       *[]model.ServiceTier `json:"tiers,omitempty"`
	Active      *bool                `json:"active,omitempty"`
	Featured    *bool                `json:"featured,omitempty"`
	Order       *int                 `json:"order,omitempty"`
}

type ServiceListResponse struct {
	Services []model.Service `json:"services"`
}

// PortalResponse bundles everything the public portal page needs for one
// tenant: the tenant itself, its active services, and only the categories
// those services use.
type PortalResponse struct {
	Tenant     model.Tenant            `json:"tenant"`
	Services   []model.Service         `json:"services"`
	Categories []model.ServiceCategory `json:"categories"`
}
