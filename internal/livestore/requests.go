package livestore

import (
	"context"
	"sync"

	"guest-portal-backend/internal/alerts"
	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/model"
)

type RequestView struct {
	view[model.ServiceRequest]
	accessor *collections.Requests

	idxMu      sync.Mutex
	idxVersion uint64
	byID       map[string]model.ServiceRequest
}

// NewRequestView mirrors every request, newest first.
func NewRequestView(store docstore.Store, bus *alerts.Bus) *RequestView {
	v := newRequestView(store, bus)
	v.unsubStore = v.accessor.SubscribeAll(v.applySnapshot)
	return v
}

// NewTenantRequestView mirrors one tenant's requests, newest first.
func NewTenantRequestView(store docstore.Store, bus *alerts.Bus, tenantID string) *RequestView {
	v := newRequestView(store, bus)
	v.unsubStore = v.accessor.SubscribeByTenant(tenantID, v.applySnapshot)
	return v
}

func newRequestView(store docstore.Store, bus *alerts.Bus) *RequestView {
	if bus == nil {
		bus = alerts.Default
	}
	v := &RequestView{accessor: collections.NewRequests(store)}
	v.init("requests")
	v.unsubAlerts = bus.Subscribe(v.alertListener(alerts.ContextRequests))
	return v
}

func (v *RequestView) GetByID(id string) (model.ServiceRequest, bool) {
	v.index()
	v.idxMu.Lock()
	defer v.idxMu.Unlock()
	r, ok := v.byID[id]
	return r, ok
}

func (v *RequestView) index() {
	v.mu.RLock()
	version := v.version
	items := v.items
	v.mu.RUnlock()

	v.idxMu.Lock()
	defer v.idxMu.Unlock()
	if v.byID != nil && v.idxVersion == version {
		return
	}
	v.byID = make(map[string]model.ServiceRequest, len(items))
	for _, r := range items {
		v.byID[r.ID] = r
	}
	v.idxVersion = version
}

func (v *RequestView) Submit(ctx context.Context, params collections.SubmitRequestParams) (*model.ServiceRequest, error) {
	request, err := v.accessor.Submit(ctx, params)
	if err != nil {
		v.setError(err)
		return nil, err
	}
	return request, nil
}

func (v *RequestView) UpdateStatus(ctx context.Context, id string, status model.RequestStatus) error {
	if err := v.accessor.UpdateStatus(ctx, id, status); err != nil {
		v.setError(err)
		return err
	}
	return nil
}
