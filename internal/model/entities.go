package model

import "time"

// Branding holds a tenant's portal presentation settings. Everything is
// optional; zero values mean "use portal defaults".
type Branding struct {
	LogoURL      string `json:"logoUrl,omitempty"`
	HeroImageURL string `json:"heroImageUrl,omitempty"`
	PrimaryColor string `json:"primaryColor,omitempty"`
	AccentColor  string `json:"accentColor,omitempty"`
	HideBranding bool   `json:"hideBranding,omitempty"`
	CustomDomain string `json:"customDomain,omitempty"`
	HeroLayout   string `json:"heroLayout,omitempty"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Tenant is one property/host account. The slug is globally unique and is the
// only key the public portal resolves a tenant by.
type Tenant struct {
	ID          string         `json:"id"`
	Slug        string         `json:"slug"`
	Name        string         `json:"name"`
	Description *LocalizedText `json:"description,omitempty"`
	Branding    Branding       `json:"branding"`
	Contact     ContactInfo    `json:"contact"`
	Active      bool           `json:"active"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ServiceCategory is a global taxonomy entry shared across all tenants.
// Services reference categories by id but no tenant owns a category.
type ServiceCategory struct {
	ID          string         `json:"id"`
	Name        LocalizedText  `json:"name"`
	Description *LocalizedText `json:"description,omitempty"`
	Icon        string         `json:"icon"`
	Order       int            `json:"order"`
	Active      bool           `json:"active"`
}

// ServiceTier is a named sub-option of a Service. Tiers are embedded in their
// service document and are not independently addressable.
type ServiceTier struct {
	ID          string         `json:"id"`
	Name        LocalizedText  `json:"name"`
	Description *LocalizedText `json:"description,omitempty"`
	Price       *float64       `json:"price,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Badge       string         `json:"badge,omitempty"`
}

// Service is one bookable offering owned by exactly one tenant. A free or
// quote pricing type carries no numeric price; fixed and variable use Price
// as the base or "from" price. Tier prices, when present, override the base
// price for the guest's selection.
type Service struct {
	ID          string         `json:"id"`
	TenantID    string         `json:"tenantId"`
	CategoryID  string         `json:"categoryId"`
	Name        LocalizedText  `json:"name"`
	Description LocalizedText  `json:"description"`
	ShortDesc   *LocalizedText `json:"shortDescription,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	PricingType PricingType    `json:"pricingType"`
	Price       *float64       `json:"price,omitempty"`
	Currency    string         `json:"currency"`
	Tiers       []ServiceTier  `json:"tiers,omitempty"`
	Active      bool           `json:"active"`
	Featured    bool           `json:"featured"`
	Order       int            `json:"order"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ServiceRequest is one guest booking attempt. ServiceName and Price are a
// point-in-time snapshot taken at submission; later service edits never
// rewrite historical requests.
type ServiceRequest struct {
	ID          string        `json:"id"`
	TenantID    string        `json:"tenantId"`
	ServiceID   string        `json:"serviceId"`
	ServiceName LocalizedText `json:"serviceName"`
	CategoryID  string        `json:"categoryId"`
	GuestName   string        `json:"guestName"`
	GuestEmail  string        `json:"guestEmail,omitempty"`
	GuestPhone  string        `json:"guestPhone,omitempty"`
	Status      RequestStatus `json:"status"`
	TierID      string        `json:"tierId,omitempty"`
	TierLabel   string        `json:"tierLabel,omitempty"`
	Date        string        `json:"date,omitempty"`
	Time        string        `json:"time,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Price       *float64      `json:"price,omitempty"`
	Currency    string        `json:"currency"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// User is an admin account. Auth is mocked: the role and tenant scope travel
// in the session token but nothing in this layer enforces them.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	Role      Role      `json:"role"`
	TenantID  string    `json:"tenantId,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
