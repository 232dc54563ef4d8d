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

var ErrServiceNotFound = errors.New("requests: service not found")

type Requests struct {
	store    docstore.Store
	services *Services
	now      func() time.Time
}

func NewRequests(store docstore.Store) *Requests {
	return &Requests{store: store, services: NewServices(store), now: time.Now}
}

// SubscribeAll delivers requests newest first.
func (a *Requests) SubscribeAll(fn func([]model.ServiceRequest)) func() {
	return a.subscribe(docstore.Query{OrderBy: "createdAt", Desc: true}, fn)
}

func (a *Requests) SubscribeByTenant(tenantID string, fn func([]model.ServiceRequest)) func() {
	return a.subscribe(docstore.Query{
		Filters: []docstore.Filter{{Field: "tenantId", Value: tenantID}},
		OrderBy: "createdAt",
		Desc:    true,
	}, fn)
}

func (a *Requests) subscribe(q docstore.Query, fn func([]model.ServiceRequest)) func() {
	return a.store.Subscribe(model.RequestsCollection, q, func(docs []docstore.Document) {
		requests := make([]model.ServiceRequest, 0, len(docs))
		for _, doc := range docs {
			requests = append(requests, docToRequest(doc))
		}
		fn(requests)
	})
}

// List returns requests newest first, optionally scoped to one tenant.
func (a *Requests) List(ctx context.Context, tenantID string) ([]model.ServiceRequest, error) {
	q := docstore.Query{OrderBy: "createdAt", Desc: true}
	if tenantID != "" {
		q.Filters = []docstore.Filter{{Field: "tenantId", Value: tenantID}}
	}
	docs, err := a.store.List(ctx, model.RequestsCollection, q)
	if err != nil {
		return nil, fmt.Errorf("requests: list: %w", err)
	}
	requests := make([]model.ServiceRequest, 0, len(docs))
	for _, doc := range docs {
		requests = append(requests, docToRequest(doc))
	}
	return requests, nil
}

func (a *Requests) GetByID(ctx context.Context, id string) (*model.ServiceRequest, error) {
	doc, err := a.store.Get(ctx, model.RequestsCollection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("requests: get %s: %w", id, err)
	}
	r := docToRequest(doc)
	return &r, nil
}

type SubmitRequestParams struct {
	TenantID   string
	ServiceID  string
	GuestName  string
	GuestEmail string
	GuestPhone string
	TierID     string
	Date       string
	Time       string
	Notes      string
}

// Submit creates a request from a guest booking form. The service name,
// category, price, and currency are captured as a point-in-time snapshot so
// later service edits never rewrite the request.
func (a *Requests) Submit(ctx context.Context, params SubmitRequestParams) (*model.ServiceRequest, error) {
	if params.GuestName == "" {
		return nil, fmt.Errorf("requests: guest name required")
	}

	service, err := a.services.GetByID(ctx, params.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	price := service.Price
	tierLabel := ""
	if params.TierID != "" {
		for _, tier := range service.Tiers {
			if tier.ID != params.TierID {
				continue
			}
			tierLabel = tier.Name.EN
			if tier.Price != nil {
				price = tier.Price
			}
			break
		}
	}

	now := a.now()
	request := model.ServiceRequest{
		ID: uuid.NewString(),
		// The service owns the tenant binding; the client-sent tenant id is
		// not trusted.
		TenantID:    service.TenantID,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		CategoryID:  service.CategoryID,
		GuestName:   params.GuestName,
		GuestEmail:  params.GuestEmail,
		GuestPhone:  params.GuestPhone,
		Status:      model.StatusPending,
		TierID:      params.TierID,
		TierLabel:   tierLabel,
		Date:        params.Date,
		Time:        params.Time,
		Notes:       params.Notes,
		Price:       price,
		Currency:    service.Currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := a.store.Create(ctx, model.RequestsCollection, request.ID, requestToDoc(request)); err != nil {
		return nil, fmt.Errorf("requests: submit: %w", err)
	}
	return &request, nil
}

// UpdateStatus touches only the status and updatedAt fields.
func (a *Requests) UpdateStatus(ctx context.Context, id string, status model.RequestStatus) error {
	if !status.Valid() {
		return fmt.Errorf("requests: invalid status %q", status)
	}
	doc := docstore.Document{
		"status":    string(status),
		"updatedAt": a.now(),
	}
	if err := a.store.Update(ctx, model.RequestsCollection, id, doc); err != nil {
		return fmt.Errorf("requests: update status %s: %w", id, err)
	}
	return nil
}

func requestToDoc(r model.ServiceRequest) docstore.Document {
	doc := docstore.Document{
		"id":          r.ID,
		"tenantId":    r.TenantID,
		"serviceId":   r.ServiceID,
		"serviceName": localizedDoc(r.ServiceName),
		"categoryId":  r.CategoryID,
		"guestName":   r.GuestName,
		"guestEmail":  r.GuestEmail,
		"guestPhone":  r.GuestPhone,
		"status":      string(r.Status),
		"tierId":      r.TierID,
		"tierLabel":   r.TierLabel,
		"date":        r.Date,
		"time":        r.Time,
		"notes":       r.Notes,
		"currency":    r.Currency,
		"createdAt":   r.CreatedAt,
		"updatedAt":   r.UpdatedAt,
	}
	if r.Price != nil {
		doc["price"] = *r.Price
	}
	return doc
}

func docToRequest(doc docstore.Document) model.ServiceRequest {
	return model.ServiceRequest{
		ID:          getString(doc, "id"),
		TenantID:    getString(doc, "tenantId"),
		ServiceID:   getString(doc, "serviceId"),
		ServiceName: getLocalized(doc, "serviceName"),
		CategoryID:  getString(doc, "categoryId"),
		GuestName:   getString(doc, "guestName"),
		GuestEmail:  getString(doc, "guestEmail"),
		GuestPhone:  getString(doc, "guestPhone"),
		Status:      model.RequestStatus(getString(doc, "status")),
		TierID:      getString(doc, "tierId"),
		TierLabel:   getString(doc, "tierLabel"),
		Date:        getString(doc, "date"),
		Time:        getString(doc, "time"),
		Notes:       getString(doc, "notes"),
		Price:       getFloatPtr(doc, "price"),
		Currency:    getString(doc, "currency"),
		CreatedAt:   getTime(doc, "createdAt"),
		UpdatedAt:   getTime(doc, "updatedAt"),
	}
}
