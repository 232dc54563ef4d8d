package collections

import (
	"context"
	"testing"
	"time"

	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/model"
)

func newTestServices() (*Services, *docstore.MemoryStore) {
	store := docstore.NewMemoryStore()
	services := NewServices(store)
	services.now = func() time.Time { return testTime }
	return services, store
}

func floatPtr(v float64) *float64 { return &v }

func TestServicesCreateRoundTrip(t *testing.T) {
	services, _ := newTestServices()
	ctx := context.Background()

	created, err := services.Create(ctx, CreateServiceParams{
		TenantID:    "tenant-vista",
		CategoryID:  "cat-transport",
		Name:        model.LocalizedText{EN: "Airport Transfer", BS: "Prijevoz do aerodroma"},
		Description: model.LocalizedText{EN: "Door to door"},
		PricingType: model.PricingFixed,
		Price:       floatPtr(35),
		Currency:    "BAM",
		Active:      true,
		Order:       1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := services.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("created service not found")
	}
	if got.Name.BS != "Prijevoz do aerodroma" {
		t.Fatalf("localized name lost: %#v", got.Name)
	}
	if got.Price == nil || *got.Price != 35 {
		t.Fatalf("price lost: %#v", got.Price)
	}
}

func TestServicesCreateRejectsUnknownPricingType(t *testing.T) {
	services, _ := newTestServices()

	_, err := services.Create(context.Background(), CreateServiceParams{
		TenantID:    "tenant-vista",
		Name:        model.LocalizedText{EN: "X"},
		PricingType: "per-hour",
	})
	if err == nil {
		t.Fatal("invalid pricing type accepted")
	}
}

func TestServicesFreeServiceStoresNoPriceField(t *testing.T) {
	services, store := newTestServices()
	ctx := context.Background()

	created, _ := services.Create(ctx, CreateServiceParams{
		TenantID:    "tenant-vista",
		Name:        model.LocalizedText{EN: "Late Checkout"},
		PricingType: model.PricingFree,
	})

	doc, err := store.Get(ctx, model.ServicesCollection, created.ID)
	if err != nil {
		t.Fatalf("raw get: %v", err)
	}
	if _, ok := doc["price"]; ok {
		t.Fatalf("free service stored a price field: %#v", doc["price"])
	}

	got, _ := services.GetByID(ctx, created.ID)
	if got.Price != nil {
		t.Fatalf("decoded price should be nil: %v", *got.Price)
	}
}

func TestServicesTiersRoundTrip(t *testing.T) {
	services, _ := newTestServices()
	ctx := context.Background()

	created, _ := services.Create(ctx, CreateServiceParams{
		TenantID:    "tenant-vista",
		Name:        model.LocalizedText{EN: "Breakfast"},
		PricingType: model.PricingVariable,
		Currency:    "BAM",
		Tiers: []model.ServiceTier{
			{ID: "tier-basic", Name: model.LocalizedText{EN: "Continental"}, Price: floatPtr(12)},
			{ID: "tier-full", Name: model.LocalizedText{EN: "Full Board"}, Price: floatPtr(25), Badge: "popular"},
		},
	})

	got, _ := services.GetByID(ctx, created.ID)
	if len(got.Tiers) != 2 {
		t.Fatalf("tiers lost: %#v", got.Tiers)
	}
	if got.Tiers[1].Badge != "popular" || *got.Tiers[1].Price != 25 {
		t.Fatalf("tier fields lost: %#v", got.Tiers[1])
	}
}

func TestServicesListByTenantIsolation(t *testing.T) {
	services, _ := newTestServices()
	ctx := context.Background()

	services.Create(ctx, CreateServiceParams{TenantID: "t1", Name: model.LocalizedText{EN: "A"}, PricingType: model.PricingFree, Order: 2})
	services.Create(ctx, CreateServiceParams{TenantID: "t1", Name: model.LocalizedText{EN: "B"}, PricingType: model.PricingFree, Order: 1})
	services.Create(ctx, CreateServiceParams{TenantID: "t2", Name: model.LocalizedText{EN: "C"}, PricingType: model.PricingFree})

	list, err := services.ListByTenant(ctx, "t1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("tenant isolation broken: %d services", len(list))
	}
	if list[0].Name.EN != "B" {
		t.Fatalf("not ordered by display order: %#v", list[0].Name)
	}
}

func TestServicesSubscribeByTenantIgnoresOthers(t *testing.T) {
	services, _ := newTestServices()
	ctx := context.Background()

	var snapshots [][]model.Service
	unsubscribe := services.SubscribeByTenant("t1", func(list []model.Service) {
		snapshots = append(snapshots, list)
	})
	defer unsubscribe()

	services.Create(ctx, CreateServiceParams{TenantID: "t2", Name: model.LocalizedText{EN: "Other"}, PricingType: model.PricingFree})

	// The write still triggers a snapshot for the collection, but t2's
	// service must not appear in it.
	last := snapshots[len(snapshots)-1]
	if len(last) != 0 {
		t.Fatalf("foreign tenant leaked into scoped snapshot: %#v", last)
	}
}

func TestServicesUpdatePricingTypeValidated(t *testing.T) {
	services, _ := newTestServices()
	ctx := context.Background()

	created, _ := services.Create(ctx, CreateServiceParams{
		TenantID:    "t1",
		Name:        model.LocalizedText{EN: "X"},
		PricingType: model.PricingFree,
	})

	bad := model.PricingType("hourly")
	if err := services.Update(ctx, created.ID, ServiceUpdate{PricingType: &bad}); err == nil {
		t.Fatal("invalid pricing type accepted on update")
	}
}
