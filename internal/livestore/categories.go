package livestore

import (
	"context"
	"sync"

	"guest-portal-backend/internal/alerts"
	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/model"
)

type CategoryView struct {
	view[model.ServiceCategory]
	accessor *collections.Categories

	idxMu      sync.Mutex
	idxVersion uint64
	byID       map[string]model.ServiceCategory
}

func NewCategoryView(store docstore.Store, bus *alerts.Bus) *CategoryView {
	if bus == nil {
		bus = alerts.Default
	}
	v := &CategoryView{accessor: collections.NewCategories(store)}
	v.init("categories")
	v.unsubAlerts = bus.Subscribe(v.alertListener(alerts.ContextCategories))
	v.unsubStore = v.accessor.SubscribeAll(v.applySnapshot)
	return v
}

func (v *CategoryView) GetByID(id string) (model.ServiceCategory, bool) {
	v.index()
	v.idxMu.Lock()
	defer v.idxMu.Unlock()
	c, ok := v.byID[id]
	return c, ok
}

func (v *CategoryView) index() {
	v.mu.RLock()
	version := v.version
	items := v.items
	v.mu.RUnlock()

	v.idxMu.Lock()
	defer v.idxMu.Unlock()
	if v.byID != nil && v.idxVersion == version {
		return
	}
	v.byID = make(map[string]model.ServiceCategory, len(items))
	for _, c := range items {
		v.byID[c.ID] = c
	}
	v.idxVersion = version
}

func (v *CategoryView) Add(ctx context.Context, params collections.CreateCategoryParams) (*model.ServiceCategory, error) {
	category, err := v.accessor.Create(ctx, params)
	if err != nil {
		v.setError(err)
		return nil, err
	}
	return category, nil
}

func (v *CategoryView) Update(ctx context.Context, id string, upd collections.CategoryUpdate) error {
	if err := v.accessor.Update(ctx, id, upd); err != nil {
		v.setError(err)
		return err
	}
	return nil
}

func (v *CategoryView) Delete(ctx context.Context, id string) error {
	if err := v.accessor.Delete(ctx, id); err != nil {
		v.setError(err)
		return err
	}
	return nil
}
