package livestore

import (
	"context"
	"sync"

	"guest-portal-backend/internal/alerts"
	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/model"
)

type TenantView struct {
	view[model.Tenant]
	accessor *collections.Tenants

	idxMu      sync.Mutex
	idxVersion uint64
	byID       map[string]model.Tenant
	bySlug     map[string]model.Tenant
}

func NewTenantView(store docstore.Store, bus *alerts.Bus) *TenantView {
	if bus == nil {
		bus = alerts.Default
	}
	v := &TenantView{accessor: collections.NewTenants(store)}
	v.init("tenants")
	v.unsubAlerts = bus.Subscribe(v.alertListener(alerts.ContextTenants))
	v.unsubStore = v.accessor.SubscribeAll(v.applySnapshot)
	return v
}

func (v *TenantView) GetByID(id string) (model.Tenant, bool) {
	v.index()
	v.idxMu.Lock()
	defer v.idxMu.Unlock()
	t, ok := v.byID[id]
	return t, ok
}

func (v *TenantView) GetBySlug(slug string) (model.Tenant, bool) {
	v.index()
	v.idxMu.Lock()
	defer v.idxMu.Unlock()
	t, ok := v.bySlug[slug]
	return t, ok
}

// index rebuilds the lookup maps only when the cached list has changed.
func (v *TenantView) index() {
	v.mu.RLock()
	version := v.version
	items := v.items
	v.mu.RUnlock()

	v.idxMu.Lock()
	defer v.idxMu.Unlock()
	if v.byID != nil && v.idxVersion == version {
		return
	}
	v.byID = make(map[string]model.Tenant, len(items))
	v.bySlug = make(map[string]model.Tenant, len(items))
	for _, t := range items {
		v.byID[t.ID] = t
		v.bySlug[t.Slug] = t
	}
	v.idxVersion = version
}

func (v *TenantView) Add(ctx context.Context, params collections.CreateTenantParams) (*model.Tenant, error) {
	tenant, err := v.accessor.Create(ctx, params)
	if err != nil {
		v.setError(err)
		return nil, err
	}
	return tenant, nil
}

func (v *TenantView) Update(ctx context.Context, id string, upd collections.TenantUpdate) error {
	if err := v.accessor.Update(ctx, id, upd); err != nil {
		v.setError(err)
		return err
	}
	return nil
}

func (v *TenantView) Delete(ctx context.Context, id string) error {
	if err := v.accessor.Delete(ctx, id); err != nil {
		v.setError(err)
		return err
	}
	return nil
}
