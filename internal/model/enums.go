package model

type PricingType string

const (
	PricingFree     PricingType = "free"
	PricingFixed    PricingType = "fixed"
	PricingVariable PricingType = "variable"
	PricingQuote    PricingType = "quote"
)

func (p PricingType) Valid() bool {
	switch p {
	case PricingFree, PricingFixed, PricingVariable, PricingQuote:
		return true
	}
	return false
}

// RequestStatus is a free-assignment enum: the conventional progression is
// pending → confirmed → in_progress → completed, with cancelled reachable at
// any point, but no transition table is enforced.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusConfirmed  RequestStatus = "confirmed"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleTenantAdmin  Role = "tenant_admin"
	RoleTenantViewer Role = "tenant_viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleTenantAdmin, RoleTenantViewer:
		return true
	}
	return false
}
