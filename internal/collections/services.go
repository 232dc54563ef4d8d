package collections

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/model"
)

type Services struct {
	store docstore.Store
	now   func() time.Time
}

func NewServices(store docstore.Store) *Services {
	return &Services{store: store, now: time.Now}
}

func (a *Services) SubscribeAll(fn func([]model.Service)) func() {
	return a.subscribe(docstore.Query{OrderBy: "order"}, fn)
}

// SubscribeByTenant scopes the snapshot stream to one tenant's services.
func (a *Services) SubscribeByTenant(tenantID string, fn func([]model.Service)) func() {
	return a.subscribe(docstore.Query{
		Filters: []docstore.Filter{{Field: "tenantId", Value: tenantID}},
		OrderBy: "order",
	}, fn)
}

func (a *Services) subscribe(q docstore.Query, fn func([]model.Service)) func() {
	return a.store.Subscribe(model.ServicesCollection, q, func(docs []docstore.Document) {
		services := make([]model.Service, 0, len(docs))
		for _, doc := range docs {
			services = append(services, docToService(doc))
		}
		fn(services)
	})
}

// List returns every service across tenants ordered by display order.
func (a *Services) List(ctx context.Context) ([]model.Service, error) {
	return a.list(ctx, docstore.Query{OrderBy: "order"})
}

// ListByTenant returns one tenant's services ordered by display order.
func (a *Services) ListByTenant(ctx context.Context, tenantID string) ([]model.Service, error) {
	return a.list(ctx, docstore.Query{
		Filters: []docstore.Filter{{Field: "tenantId", Value: tenantID}},
		OrderBy: "order",
	})
}

func (a *Services) list(ctx context.Context, q docstore.Query) ([]model.Service, error) {
	docs, err := a.store.List(ctx, model.ServicesCollection, q)
	if err != nil {
		return nil, fmt.Errorf("services: list: %w", err)
	}
	services := make([]model.Service, 0, len(docs))
	for _, doc := range docs {
		services = append(services, docToService(doc))
	}
	return services, nil
}

func (a *Services) GetByID(ctx context.Context, id string) (*model.Service, error) {
	doc, err := a.store.Get(ctx, model.ServicesCollection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("services: get %s: %w", id, err)
	}
	s := docToService(doc)
	return &s, nil
}

type CreateServiceParams struct {
	TenantID    string
	CategoryID  string
	Name        model.LocalizedText
	Description model.LocalizedText
	ShortDesc   *model.LocalizedText
	ImageURL    string
	PricingType model.PricingType
	Price       *float64
	Currency    string
	Tiers       []model.ServiceTier
	Active      bool
	Featured    bool
	Order       int
}

func (a *Services) Create(ctx context.Context, params CreateServiceParams) (*model.Service, error) {
	if !params.PricingType.Valid() {
		return nil, fmt.Errorf("services: invalid pricing type %q", params.PricingType)
	}

	now := a.now()
	service := model.Service{
		ID:          uuid.NewString(),
		TenantID:    params.TenantID,
		CategoryID:  params.CategoryID,
		Name:        params.Name,
		Description: params.Description,
		ShortDesc:   params.ShortDesc,
		ImageURL:    params.ImageURL,
		PricingType: params.PricingType,
		Price:       params.Price,
		Currency:    params.Currency,
		Tiers:       params.Tiers,
		Active:      params.Active,
		Featured:    params.Featured,
		Order:       params.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := a.store.Create(ctx, model.ServicesCollection, service.ID, serviceToDoc(service)); err != nil {
		return nil, fmt.Errorf("services: create: %w", err)
	}
	return &service, nil
}

type ServiceUpdate struct {
	CategoryID  *string
	Name        *model.LocalizedText
	Description *model.LocalizedText
	ShortDesc   *model.LocalizedText
	ImageURL    *string
	PricingType *model.PricingType
	Price       *float64
	Currency    *string
	Tiers       *[]model.ServiceTier
	Active      *bool
	Featured    *bool
	Order       *int
}

func (a *Services) Update(ctx context.Context, id string, upd ServiceUpdate) error {
	doc := docstore.Document{"updatedAt": a.now()}
	if upd.CategoryID != nil {
		doc["categoryId"] = *upd.CategoryID
	}
	if upd.Name != nil {
		doc["name"] = localizedDoc(*upd.Name)
	}
	if upd.Description != nil {
		doc["description"] = localizedDoc(*upd.Description)
	}
	if upd.ShortDesc != nil {
		doc["shortDescription"] = localizedDoc(*upd.ShortDesc)
	}
	if upd.ImageURL != nil {
		doc["imageUrl"] = *upd.ImageURL
	}
	if upd.PricingType != nil {
		if !upd.PricingType.Valid() {
			return fmt.Errorf("services: invalid pricing type %q", *upd.PricingType)
		}
		doc["pricingType"] = string(*upd.PricingType)
	}
	if upd.Price != nil {
		doc["price"] = *upd.Price
	}
	if upd.Currency != nil {
		doc["currency"] = *upd.Currency
	}
	if upd.Tiers != nil {
		doc["tiers"] = tiersToDoc(*upd.Tiers)
	}
	if upd.Active != nil {
		doc["active"] = *upd.Active
	}
	if upd.Featured != nil {
		doc["featured"] = *upd.Featured
	}
	if upd.Order != nil {
		doc["order"] = *upd.Order
	}
	if err := a.store.Update(ctx, model.ServicesCollection, id, doc); err != nil {
		return fmt.Errorf("services: update %s: %w", id, err)
	}
	return nil
}

func (a *Services) Delete(ctx context.Context, id string) error {
	if err := a.store.Delete(ctx, model.ServicesCollection, id); err != nil {
		return fmt.Errorf("services: delete %s: %w", id, err)
	}
	return nil
}

func serviceToDoc(s model.Service) docstore.Document {
	doc := docstore.Document{
		"id":               s.ID,
		"tenantId":         s.TenantID,
		"categoryId":       s.CategoryID,
		"name":             localizedDoc(s.Name),
		"description":      localizedDoc(s.Description),
		"shortDescription": localizedDocPtr(s.ShortDesc),
		"imageUrl":         s.ImageURL,
		"pricingType":      string(s.PricingType),
		"currency":         s.Currency,
		"active":           s.Active,
		"featured":         s.Featured,
		"order":            s.Order,
		"createdAt":        s.CreatedAt,
		"updatedAt":        s.UpdatedAt,
	}
	// Free and quote services carry no price key at all.
	if s.Price != nil {
		doc["price"] = *s.Price
	}
	if len(s.Tiers) > 0 {
		doc["tiers"] = tiersToDoc(s.Tiers)
	}
	return doc
}

func docToService(doc docstore.Document) model.Service {
	return model.Service{
		ID:          getString(doc, "id"),
		TenantID:    getString(doc, "tenantId"),
		CategoryID:  getString(doc, "categoryId"),
		Name:        getLocalized(doc, "name"),
		Description: getLocalized(doc, "description"),
		ShortDesc:   getLocalizedPtr(doc, "shortDescription"),
		ImageURL:    getString(doc, "imageUrl"),
		PricingType: model.PricingType(getString(doc, "pricingType")),
		Price:       getFloatPtr(doc, "price"),
		Currency:    getString(doc, "currency"),
		Tiers:       docToTiers(doc["tiers"]),
		Active:      getBool(doc, "active"),
		Featured:    getBool(doc, "featured"),
		Order:       getInt(doc, "order"),
		CreatedAt:   getTime(doc, "createdAt"),
		UpdatedAt:   getTime(doc, "updatedAt"),
	}
}

func tiersToDoc(tiers []model.ServiceTier) []any {
	out := make([]any, 0, len(tiers))
	for _, tier := range tiers {
		d := docstore.Document{
			"id":          tier.ID,
			"name":        localizedDoc(tier.Name),
			"description": localizedDocPtr(tier.Description),
			"imageUrl":    tier.ImageURL,
			"badge":       tier.Badge,
		}
		if tier.Price != nil {
			d["price"] = *tier.Price
		}
		out = append(out, d)
	}
	return out
}

func docToTiers(v any) []model.ServiceTier {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	tiers := make([]model.ServiceTier, 0, len(items))
	for _, item := range items {
		d, ok := item.(map[string]any)
		if !ok {
			continue
		}
		tiers = append(tiers, model.ServiceTier{
			ID:          getString(d, "id"),
			Name:        getLocalized(d, "name"),
			Description: getLocalizedPtr(d, "description"),
			Price:       getFloatPtr(d, "price"),
			ImageURL:    getString(d, "imageUrl"),
			Badge:       getString(d, "badge"),
		})
	}
	return tiers
}
