package collections

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/env"
	"guest-portal-backend/internal/model"
)

var ErrSeedDisabled = errors.New("seed: disabled outside dev mode")

// Seeder bootstraps an empty store with the fixed demo dataset. Seeding a
// populated store is a no-op, and each Seeder runs the check at most once per
// process. Reset is a dev tool: it empties every collection and reseeds.
type Seeder struct {
	store docstore.Store
	now   func() time.Time

	once sync.Once
	err  error
}

func NewSeeder(store docstore.Store) *Seeder {
	return &Seeder{store: store, now: time.Now}
}

func (s *Seeder) Seed(ctx context.Context) error {
	if !env.IsDevMode() {
		return ErrSeedDisabled
	}
	s.once.Do(func() {
		s.err = s.seed(ctx)
	})
	return s.err
}

func (s *Seeder) seed(ctx context.Context) error {
	tenants, err := s.store.List(ctx, model.TenantsCollection, docstore.Query{})
	if err != nil {
		return fmt.Errorf("seed: count tenants: %w", err)
	}
	services, err := s.store.List(ctx, model.ServicesCollection, docstore.Query{})
	if err != nil {
		return fmt.Errorf("seed: count services: %w", err)
	}
	if len(tenants) > 0 || len(services) > 0 {
		return nil
	}

	now := s.now()
	for _, tenant := range seedTenants(now) {
		if err := s.store.Create(ctx, model.TenantsCollection, tenant.ID, tenantToDoc(tenant)); err != nil {
			return fmt.Errorf("seed: tenant %s: %w", tenant.ID, err)
		}
	}
	for _, category := range seedCategories() {
		if err := s.store.Create(ctx, model.CategoriesCollection, category.ID, categoryToDoc(category)); err != nil {
			return fmt.Errorf("seed: category %s: %w", category.ID, err)
		}
	}
	for _, service := range seedServices(now) {
		if err := s.store.Create(ctx, model.ServicesCollection, service.ID, serviceToDoc(service)); err != nil {
			return fmt.Errorf("seed: service %s: %w", service.ID, err)
		}
	}
	return nil
}

// Reset deletes every document in every collection and reseeds. Dev only.
func (s *Seeder) Reset(ctx context.Context) error {
	if !env.IsDevMode() {
		return ErrSeedDisabled
	}
	for _, collection := range []string{
		model.TenantsCollection,
		model.CategoriesCollection,
		model.ServicesCollection,
		model.RequestsCollection,
	} {
		docs, err := s.store.List(ctx, collection, docstore.Query{})
		if err != nil {
			return fmt.Errorf("reset: list %s: %w", collection, err)
		}
		for _, doc := range docs {
			id, _ := doc["id"].(string)
			if id == "" {
				continue
			}
			if err := s.store.Delete(ctx, collection, id); err != nil {
				return fmt.Errorf("reset: delete %s/%s: %w", collection, id, err)
			}
		}
	}
	return s.seed(ctx)
}
