package livestore

import (
	"context"
	"sync"

	"guest-portal-backend/internal/alerts"
	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/model"
)

type ServiceView struct {
	view[model.Service]
	accessor *collections.Services

	idxMu      sync.Mutex
	idxVersion uint64
	byID       map[string]model.Service
	byTenant   map[string][]model.Service
}

// NewServiceView mirrors every service across all tenants.
func NewServiceView(store docstore.Store, bus *alerts.Bus) *ServiceView {
	v := newServiceView(store, bus)
	v.unsubStore = v.accessor.SubscribeAll(v.applySnapshot)
	return v
}

// NewTenantServiceView mirrors a single tenant's services.
func NewTenantServiceView(store docstore.Store, bus *alerts.Bus, tenantID string) *ServiceView {
	v := newServiceView(store, bus)
	v.unsubStore = v.accessor.SubscribeByTenant(tenantID, v.applySnapshot)
	return v
}

func newServiceView(store docstore.Store, bus *alerts.Bus) *ServiceView {
	if bus == nil {
		bus = alerts.Default
	}
	v := &ServiceView{accessor: collections.NewServices(store)}
	v.init("services")
	v.unsubAlerts = bus.Subscribe(v.alertListener(alerts.ContextServices))
	return v
}

func (v *ServiceView) GetByID(id string) (model.Service, bool) {
	v.index()
	v.idxMu.Lock()
	defer v.idxMu.Unlock()
	s, ok := v.byID[id]
	return s, ok
}

// GetByTenantID returns the tenant's services in display order. Services of
// other tenants never leak into the result.
func (v *ServiceView) GetByTenantID(tenantID string) []model.Service {
	v.index()
	v.idxMu.Lock()
	defer v.idxMu.Unlock()
	services := v.byTenant[tenantID]
	out := make([]model.Service, len(services))
	copy(out, services)
	return out
}

// ActiveByTenantID is the portal read shape: the tenant's active services.
func (v *ServiceView) ActiveByTenantID(tenantID string) []model.Service {
	all := v.GetByTenantID(tenantID)
	out := make([]model.Service, 0, len(all))
	for _, s := range all {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// CategoryIDsInUse reports the categories that have at least one active
// service for the tenant.
func (v *ServiceView) CategoryIDsInUse(tenantID string) map[string]bool {
	inUse := make(map[string]bool)
	for _, s := range v.ActiveByTenantID(tenantID) {
		inUse[s.CategoryID] = true
	}
	return inUse
}

func (v *ServiceView) index() {
	v.mu.RLock()
	version := v.version
	items := v.items
	v.mu.RUnlock()

	v.idxMu.Lock()
	defer v.idxMu.Unlock()
	if v.byID != nil && v.idxVersion == version {
		return
	}
	v.byID = make(map[string]model.Service, len(items))
	v.byTenant = make(map[string][]model.Service)
	for _, s := range items {
		v.byID[s.ID] = s
		v.byTenant[s.TenantID] = append(v.byTenant[s.TenantID], s)
	}
	v.idxVersion = version
}

func (v *ServiceView) Add(ctx context.Context, params collections.CreateServiceParams) (*model.Service, error) {
	service, err := v.accessor.Create(ctx, params)
	if err != nil {
		v.setError(err)
		return nil, err
	}
	return service, nil
}

func (v *ServiceView) Update(ctx context.Context, id string, upd collections.ServiceUpdate) error {
	if err := v.accessor.Update(ctx, id, upd); err != nil {
		v.setError(err)
		return err
	}
	return nil
}

func (v *ServiceView) Delete(ctx context.Context, id string) error {
	if err := v.accessor.Delete(ctx, id); err != nil {
		v.setError(err)
		return err
	}
	return nil
}
