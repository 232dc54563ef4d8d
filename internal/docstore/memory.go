package docstore

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is the in-process backend. It is the reference implementation
// of the snapshot contract (every committed write redelivers the full result
// set to matching subscribers) and backs the tests and local development.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]map[string]Document
	subs        map[int]*memorySub
	nextSubID   int
	seq         uint64
}

type memorySub struct {
	collection string
	query      Query
	fn         SnapshotFunc

	mu        sync.Mutex
	delivered uint64
}

// deliver hands the snapshot to the callback unless a newer commit's snapshot
// already went out. Without this, two concurrent writers could deliver an
// older result set after a newer one and leave the subscriber stale.
func (sub *memorySub) deliver(seq uint64, docs []Document) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if seq < sub.delivered {
		return
	}
	sub.delivered = seq
	sub.fn(docs)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]Document),
		subs:        make(map[int]*memorySub),
	}
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneDocument(doc), nil
}

func (s *MemoryStore) List(ctx context.Context, collection string, q Query) ([]Document, error) {
	s.mu.Lock()
	docs := s.resultSet(collection, q)
	s.mu.Unlock()
	return docs, nil
}

func (s *MemoryStore) Create(ctx context.Context, collection, id string, doc Document) error {
	doc = Sanitize(doc)
	doc["id"] = id

	s.mu.Lock()
	col, ok := s.collections[collection]
	if !ok {
		col = make(map[string]Document)
		s.collections[collection] = col
	}
	col[id] = cloneDocument(doc)
	notify := s.pendingSnapshots(collection)
	s.mu.Unlock()

	deliver(notify)
	return nil
}

// Update merges top-level fields into the existing document. Fields absent
// from the partial payload keep their stored value.
func (s *MemoryStore) Update(ctx context.Context, collection, id string, doc Document) error {
	doc = Sanitize(doc)

	s.mu.Lock()
	existing, ok := s.collections[collection][id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	for k, v := range doc {
		existing[k] = cloneValue(v)
	}
	notify := s.pendingSnapshots(collection)
	s.mu.Unlock()

	deliver(notify)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	col, ok := s.collections[collection]
	if ok {
		delete(col, id)
	}
	notify := s.pendingSnapshots(collection)
	s.mu.Unlock()

	deliver(notify)
	return nil
}

// Subscribe registers fn and delivers the initial snapshot before returning.
// Snapshots are computed under the store lock but delivered outside it.
// Delivery is serialized per subscription in commit order; a snapshot that
// lost the race to a newer commit is dropped. Callbacks may read from the
// store but must not write back into it.
func (s *MemoryStore) Subscribe(collection string, q Query, fn SnapshotFunc) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	sub := &memorySub{collection: collection, query: q, fn: fn}
	s.subs[id] = sub
	initial := s.resultSet(collection, q)
	seq := s.seq
	s.mu.Unlock()

	sub.deliver(seq, initial)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

type pendingSnapshot struct {
	sub  *memorySub
	seq  uint64
	docs []Document
}

// pendingSnapshots computes, under the lock, the post-commit result set for
// every subscription watching the collection. Each commit takes the next
// sequence number so delivery can detect snapshots made stale by a later
// commit.
func (s *MemoryStore) pendingSnapshots(collection string) []pendingSnapshot {
	s.seq++
	seq := s.seq

	var out []pendingSnapshot
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		sub := s.subs[id]
		if sub.collection != collection {
			continue
		}
		out = append(out, pendingSnapshot{sub: sub, seq: seq, docs: s.resultSet(collection, sub.query)})
	}
	return out
}

func deliver(snapshots []pendingSnapshot) {
	for _, snap := range snapshots {
		snap.sub.deliver(snap.seq, snap.docs)
	}
}

// resultSet applies the query to the collection. Caller must hold s.mu.
func (s *MemoryStore) resultSet(collection string, q Query) []Document {
	docs := make([]Document, 0)
	for _, doc := range s.collections[collection] {
		if !matches(doc, q.Filters) {
			continue
		}
		docs = append(docs, cloneDocument(doc))
	}
	sortDocuments(docs, q)
	return docs
}

func matches(doc Document, filters []Filter) bool {
	for _, f := range filters {
		if doc[f.Field] != f.Value {
			return false
		}
	}
	return true
}

func sortDocuments(docs []Document, q Query) {
	field := q.OrderBy
	if field == "" {
		field = "id"
	}
	sort.SliceStable(docs, func(i, j int) bool {
		c := compareValues(docs[i][field], docs[j][field])
		if q.Desc {
			return c > 0
		}
		return c < 0
	})
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0
		}
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	default:
		af, aok := toFloat(a)
		bf, bok := toFloat(b)
		if !aok || !bok {
			return 0
		}
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func cloneDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Document:
		return cloneDocument(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
