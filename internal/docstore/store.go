// Package docstore provides collection-scoped CRUD plus live full-snapshot
// subscriptions over a schemaless document database, hiding the backend's
// timestamp representation and its rejection of nil field values.
package docstore

import (
	"context"
)

// Document is one stored record. The document id is mirrored into the "id"
// field so a decoded document is self-describing.
type Document = map[string]any

// Filter is an equality condition on a top-level field.
type Filter struct {
	Field string
	Value any
}

type Query struct {
	Filters []Filter
	OrderBy string
	Desc    bool
}

// SnapshotFunc receives the entire current result set of a subscription,
// never a diff. It is invoked once immediately with the initial set and again
// after every committed change by any writer.
type SnapshotFunc func(docs []Document)

// Store is the document database port.
//
// Get returns ErrNotFound for a missing document. Create and Update sanitize
// the payload (nil values dropped at any depth) before writing; Update merges
// at the top level only, replacing each named field wholesale (a nested map
// is never deep-merged). Delete never cascades.
//
// Subscribe never fails synchronously: it always returns a working
// unsubscribe func, and backend failures are reported asynchronously on the
// alert bus tagged with the collection's context. The unsubscribe func must
// be called on teardown or the listener leaks; calling it more than once is
// safe.
type Store interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection string, q Query) ([]Document, error)
	Create(ctx context.Context, collection, id string, doc Document) error
	Update(ctx context.Context, collection, id string, doc Document) error
	Delete(ctx context.Context, collection, id string) error
	Subscribe(collection string, q Query, fn SnapshotFunc) func()
}
