// Package livestore keeps a reactive in-memory mirror per entity type. Each
// view owns one store subscription: the cached list is replaced wholesale on
// every snapshot, lookups are computed from the cache, and writes go through
// the accessor and come back via the subscription. The cache is never
// mutated optimistically, so a successful write shows up only after the
// store's listener fires.
package livestore

import (
	"fmt"
	"sync"

	"guest-portal-backend/internal/alerts"
)

// view is the shared lifecycle core: Loading until the first snapshot, then
// Ready, with Error fed by alert-bus events until a fresh snapshot clears it.
type view[T any] struct {
	mu      sync.RWMutex
	items   []T
	version uint64
	loading bool
	errMsg  string
	label   string

	unsubStore  func()
	unsubAlerts func()
	closeOnce   sync.Once
}

func (v *view[T]) init(label string) {
	v.label = label
	v.loading = true
}

// applySnapshot replaces the cached list and clears any prior error.
func (v *view[T]) applySnapshot(items []T) {
	v.mu.Lock()
	v.items = items
	v.version++
	v.loading = false
	v.errMsg = ""
	v.mu.Unlock()
}

// alertListener filters bus events down to this view's context.
func (v *view[T]) alertListener(ctx alerts.Context) func(alerts.Event) {
	return func(e alerts.Event) {
		if e.Context != ctx {
			return
		}
		v.mu.Lock()
		v.errMsg = errorMessage(v.label, e)
		v.loading = false
		v.mu.Unlock()
	}
}

func (v *view[T]) setError(err error) {
	v.mu.Lock()
	v.errMsg = err.Error()
	v.mu.Unlock()
}

// Items returns a copy of the current cached list.
func (v *view[T]) Items() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

func (v *view[T]) IsLoading() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loading
}

// Err returns the current user-facing error message, empty when healthy.
func (v *view[T]) Err() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.errMsg
}

// Close releases the subscription and the alert listener exactly once, even
// under racing calls.
func (v *view[T]) Close() {
	v.closeOnce.Do(func() {
		if v.unsubStore != nil {
			v.unsubStore()
		}
		if v.unsubAlerts != nil {
			v.unsubAlerts()
		}
	})
}

func errorMessage(label string, e alerts.Event) string {
	if e.Code == alerts.CodePermissionDenied {
		return fmt.Sprintf("You do not have permission to view %s. Ask an administrator to check your access.", label)
	}
	if e.Message != "" {
		return e.Message
	}
	return "Failed to load " + label
}
