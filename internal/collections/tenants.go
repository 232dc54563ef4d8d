package collections

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/model"
)

type Tenants struct {
	store docstore.Store
	now   func() time.Time
}

func NewTenants(store docstore.Store) *Tenants {
	return &Tenants{store: store, now: time.Now}
}

// SubscribeAll delivers the full tenant list on every change.
func (a *Tenants) SubscribeAll(fn func([]model.Tenant)) func() {
	return a.store.Subscribe(model.TenantsCollection, docstore.Query{OrderBy: "name"}, func(docs []docstore.Document) {
		tenants := make([]model.Tenant, 0, len(docs))
		for _, doc := range docs {
			tenants = append(tenants, docToTenant(doc))
		}
		fn(tenants)
	})
}

// List returns all tenants ordered by name.
func (a *Tenants) List(ctx context.Context) ([]model.Tenant, error) {
	docs, err := a.store.List(ctx, model.TenantsCollection, docstore.Query{OrderBy: "name"})
	if err != nil {
		return nil, fmt.Errorf("tenants: list: %w", err)
	}
	tenants := make([]model.Tenant, 0, len(docs))
	for _, doc := range docs {
		tenants = append(tenants, docToTenant(doc))
	}
	return tenants, nil
}

// GetBySlug resolves a tenant by its public portal slug, exact match. A
// missing slug is a nil result, not an error, so callers can render
// "not found".
func (a *Tenants) GetBySlug(ctx context.Context, slug string) (*model.Tenant, error) {
	docs, err := a.store.List(ctx, model.TenantsCollection, docstore.Query{
		Filters: []docstore.Filter{{Field: "slug", Value: slug}},
	})
	if err != nil {
		return nil, fmt.Errorf("tenants: get by slug %q: %w", slug, err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	t := docToTenant(docs[0])
	return &t, nil
}

type CreateTenantParams struct {
	Slug        string
	Name        string
	Description *model.LocalizedText
	Branding    model.Branding
	Contact     model.ContactInfo
	Active      bool
}

func (a *Tenants) Create(ctx context.Context, params CreateTenantParams) (*model.Tenant, error) {
	existing, err := a.GetBySlug(ctx, params.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("tenants: slug %q already in use", params.Slug)
	}

	now := a.now()
	tenant := model.Tenant{
		ID:          uuid.NewString(),
		Slug:        params.Slug,
		Name:        params.Name,
		Description: params.Description,
		Branding:    params.Branding,
		Contact:     params.Contact,
		Active:      params.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := a.store.Create(ctx, model.TenantsCollection, tenant.ID, tenantToDoc(tenant)); err != nil {
		return nil, fmt.Errorf("tenants: create: %w", err)
	}
	return &tenant, nil
}

// TenantUpdate is a partial update; nil fields are left untouched.
type TenantUpdate struct {
	Slug        *string
	Name        *string
	Description *model.LocalizedText
	Branding    *model.Branding
	Contact     *model.ContactInfo
	Active      *bool
}

func (a *Tenants) Update(ctx context.Context, id string, upd TenantUpdate) error {
	doc := docstore.Document{"updatedAt": a.now()}
	if upd.Slug != nil {
		doc["slug"] = *upd.Slug
	}
	if upd.Name != nil {
		doc["name"] = *upd.Name
	}
	if upd.Description != nil {
		doc["description"] = localizedDoc(*upd.Description)
	}
	if upd.Branding != nil {
		doc["branding"] = brandingToDoc(*upd.Branding)
	}
	if upd.Contact != nil {
		doc["contact"] = contactToDoc(*upd.Contact)
	}
	if upd.Active != nil {
		doc["active"] = *upd.Active
	}
	if err := a.store.Update(ctx, model.TenantsCollection, id, doc); err != nil {
		return fmt.Errorf("tenants: update %s: %w", id, err)
	}
	return nil
}

// Delete removes the tenant document only. The tenant's services are not
// cascaded; orphan handling is the caller's concern.
func (a *Tenants) Delete(ctx context.Context, id string) error {
	if err := a.store.Delete(ctx, model.TenantsCollection, id); err != nil {
		return fmt.Errorf("tenants: delete %s: %w", id, err)
	}
	return nil
}

func tenantToDoc(t model.Tenant) docstore.Document {
	return docstore.Document{
		"id":          t.ID,
		"slug":        t.Slug,
		"name":        t.Name,
		"description": localizedDocPtr(t.Description),
		"branding":    brandingToDoc(t.Branding),
		"contact":     contactToDoc(t.Contact),
		"active":      t.Active,
		"createdAt":   t.CreatedAt,
		"updatedAt":   t.UpdatedAt,
	}
}

func docToTenant(doc docstore.Document) model.Tenant {
	return model.Tenant{
		ID:          getString(doc, "id"),
		Slug:        getString(doc, "slug"),
		Name:        getString(doc, "name"),
		Description: getLocalizedPtr(doc, "description"),
		Branding:    docToBranding(getMap(doc, "branding")),
		Contact:     docToContact(getMap(doc, "contact")),
		Active:      getBool(doc, "active"),
		CreatedAt:   getTime(doc, "createdAt"),
		UpdatedAt:   getTime(doc, "updatedAt"),
	}
}

func brandingToDoc(b model.Branding) docstore.Document {
	return docstore.Document{
		"logoUrl":      b.LogoURL,
		"heroImageUrl": b.HeroImageURL,
		"primaryColor": b.PrimaryColor,
		"accentColor":  b.AccentColor,
		"hideBranding": b.HideBranding,
		"customDomain": b.CustomDomain,
		"heroLayout":   b.HeroLayout,
	}
}

func docToBranding(doc docstore.Document) model.Branding {
	if doc == nil {
		return model.Branding{}
	}
	return model.Branding{
		LogoURL:      getString(doc, "logoUrl"),
		HeroImageURL: getString(doc, "heroImageUrl"),
		PrimaryColor: getString(doc, "primaryColor"),
		AccentColor:  getString(doc, "accentColor"),
		HideBranding: getBool(doc, "hideBranding"),
		CustomDomain: getString(doc, "customDomain"),
		HeroLayout:   getString(doc, "heroLayout"),
	}
}

func contactToDoc(c model.ContactInfo) docstore.Document {
	return docstore.Document{
		"email":    c.Email,
		"phone":    c.Phone,
		"whatsapp": c.WhatsApp,
		"address":  c.Address,
	}
}

func docToContact(doc docstore.Document) model.ContactInfo {
	if doc == nil {
		return model.ContactInfo{}
	}
	return model.ContactInfo{
		Email:    getString(doc, "email"),
		Phone:    getString(doc, "phone"),
		WhatsApp: getString(doc, "whatsapp"),
		Address:  getString(doc, "address"),
	}
}
