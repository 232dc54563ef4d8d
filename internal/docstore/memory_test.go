package docstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestMemoryStoreCreateGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Create(ctx, "tenants", "tenant-1", Document{"name": "Villa Vista", "slug": "villa-vista"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	doc, err := store.Get(ctx, "tenants", "tenant-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc["id"] != "tenant-1" {
		t.Fatalf("id not mirrored into document: %#v", doc)
	}
	if doc["name"] != "Villa Vista" {
		t.Fatalf("unexpected name: %v", doc["name"])
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "tenants", "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreUpdateMergesTopLevel(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Create(ctx, "services", "svc-1", Document{"name": "Airport Transfer", "order": 1, "active": true})

	if err := store.Update(ctx, "services", "svc-1", Document{"order": 5}); err != nil {
		t.Fatalf("update: %v", err)
	}

	doc, _ := store.Get(ctx, "services", "svc-1")
	if doc["order"] != 5 {
		t.Fatalf("order not updated: %v", doc["order"])
	}
	if doc["name"] != "Airport Transfer" || doc["active"] != true {
		t.Fatalf("untouched fields changed: %#v", doc)
	}
}

func TestMemoryStoreUpdateReplacesNestedFieldWholesale(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Create(ctx, "services", "svc-1", Document{
		"name": "Airport Transfer",
		"tiers": map[string]any{"standard": 40.0, "premium": 75.0},
	})

	if err := store.Update(ctx, "services", "svc-1", Document{
		"tiers": map[string]any{"standard": 45.0},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	doc, _ := store.Get(ctx, "services", "svc-1")
	tiers, ok := doc["tiers"].(map[string]any)
	if !ok {
		t.Fatalf("tiers not a map: %#v", doc["tiers"])
	}
	if _, stale := tiers["premium"]; stale {
		t.Fatalf("nested map was merged, want wholesale replace: %#v", tiers)
	}
	if tiers["standard"] != 45.0 {
		t.Fatalf("standard tier not updated: %v", tiers["standard"])
	}
}

func TestMemoryStoreUpdateMissing(t *testing.T) {
	store := NewMemoryStore()

	err := store.Update(context.Background(), "services", "ghost", Document{"order": 1})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Create(ctx, "tenants", "tenant-1", Document{"name": "A"})
	if err := store.Delete(ctx, "tenants", "tenant-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "tenants", "tenant-1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	_, err := store.Get(ctx, "tenants", "tenant-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("document still present after delete: %v", err)
	}
}

func TestMemoryStoreListFilterAndOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Create(ctx, "services", "svc-1", Document{"tenantId": "t1", "order": 2})
	store.Create(ctx, "services", "svc-2", Document{"tenantId": "t1", "order": 1})
	store.Create(ctx, "services", "svc-3", Document{"tenantId": "t2", "order": 0})

	docs, err := store.List(ctx, "services", Query{
		Filters: []Filter{{Field: "tenantId", Value: "t1"}},
		OrderBy: "order",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("filter leaked across tenants: %d docs", len(docs))
	}
	if docs[0]["id"] != "svc-2" || docs[1]["id"] != "svc-1" {
		t.Fatalf("wrong order: %v %v", docs[0]["id"], docs[1]["id"])
	}
}

func TestMemoryStoreListDescByTime(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	store.Create(ctx, "requests", "req-old", Document{"createdAt": older})
	store.Create(ctx, "requests", "req-new", Document{"createdAt": newer})

	docs, _ := store.List(ctx, "requests", Query{OrderBy: "createdAt", Desc: true})
	if docs[0]["id"] != "req-new" {
		t.Fatalf("expected newest first, got %v", docs[0]["id"])
	}
}

func TestMemoryStoreSubscribeInitialSnapshot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	store.Create(ctx, "tenants", "tenant-1", Document{"name": "A"})

	var snapshots [][]Document
	unsubscribe := store.Subscribe("tenants", Query{}, func(docs []Document) {
		snapshots = append(snapshots, docs)
	})
	defer unsubscribe()

	if len(snapshots) != 1 {
		t.Fatalf("expected immediate snapshot, got %d", len(snapshots))
	}
	if len(snapshots[0]) != 1 {
		t.Fatalf("initial snapshot incomplete: %#v", snapshots[0])
	}
}

func TestMemoryStoreSubscribeSeesEveryWrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var snapshots [][]Document
	unsubscribe := store.Subscribe("tenants", Query{}, func(docs []Document) {
		snapshots = append(snapshots, docs)
	})
	defer unsubscribe()

	store.Create(ctx, "tenants", "tenant-1", Document{"name": "A"})
	store.Update(ctx, "tenants", "tenant-1", Document{"name": "B"})
	store.Delete(ctx, "tenants", "tenant-1")

	// initial + create + update + delete
	if len(snapshots) != 4 {
		t.Fatalf("expected 4 snapshots, got %d", len(snapshots))
	}
	last := snapshots[len(snapshots)-1]
	if len(last) != 0 {
		t.Fatalf("final snapshot should be empty: %#v", last)
	}
}

func TestMemoryStoreSubscribeOtherCollectionSilent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	calls := 0
	unsubscribe := store.Subscribe("tenants", Query{}, func([]Document) {
		calls++
	})
	defer unsubscribe()

	store.Create(ctx, "services", "svc-1", Document{"name": "X"})

	if calls != 1 {
		t.Fatalf("write to another collection triggered snapshot: %d calls", calls)
	}
}

func TestMemoryStoreUnsubscribeStopsAndIsReentrant(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	calls := 0
	unsubscribe := store.Subscribe("tenants", Query{}, func([]Document) {
		calls++
	})

	unsubscribe()
	unsubscribe()

	store.Create(ctx, "tenants", "tenant-1", Document{"name": "A"})
	if calls != 1 {
		t.Fatalf("snapshot delivered after unsubscribe: %d calls", calls)
	}
}

func TestMemoryStoreSnapshotIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	store.Create(ctx, "tenants", "tenant-1", Document{"name": "A"})

	docs, _ := store.List(ctx, "tenants", Query{})
	docs[0]["name"] = "mutated"

	doc, _ := store.Get(ctx, "tenants", "tenant-1")
	if doc["name"] != "A" {
		t.Fatal("caller mutation leaked into the store")
	}
}

func TestMemoryStoreConcurrentWritersConverge(t *testing.T) {
	const writers = 8
	ctx := context.Background()

	for iter := 0; iter < 200; iter++ {
		store := NewMemoryStore()

		var mu sync.Mutex
		var last []Document
		unsubscribe := store.Subscribe("tenants", Query{}, func(docs []Document) {
			mu.Lock()
			last = docs
			mu.Unlock()
		})

		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				id := fmt.Sprintf("tenant-%d", n)
				if err := store.Create(ctx, "tenants", id, Document{"name": id}); err != nil {
					t.Errorf("create %s: %v", id, err)
				}
			}(i)
		}
		wg.Wait()
		unsubscribe()

		mu.Lock()
		got := len(last)
		mu.Unlock()
		if got != writers {
			t.Fatalf("iter %d: final snapshot has %d docs, want %d", iter, got, writers)
		}
	}
}

func TestMemoryStoreConcurrentUpdatesConverge(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Create(ctx, "services", "svc-1", Document{"order": 0}); err != nil {
		t.Fatalf("create: %v", err)
	}

	var mu sync.Mutex
	snapshots := 0
	unsubscribe := store.Subscribe("services", Query{}, func(docs []Document) {
		mu.Lock()
		snapshots++
		mu.Unlock()
	})
	defer unsubscribe()

	const writers = 6
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if err := store.Update(ctx, "services", "svc-1", Document{"order": n}); err != nil {
				t.Errorf("update: %v", err)
			}
		}(i)
	}
	wg.Wait()

	// Stale snapshots are dropped, never reordered: at least the last
	// commit's snapshot reaches the subscriber, and the count never exceeds
	// one per commit plus the initial snapshot.
	mu.Lock()
	defer mu.Unlock()
	if snapshots < 2 {
		t.Fatalf("subscriber saw %d snapshots, want the initial one plus at least the final commit", snapshots)
	}
	if snapshots > writers+1 {
		t.Fatalf("subscriber saw %d snapshots for %d commits", snapshots, writers)
	}
}
