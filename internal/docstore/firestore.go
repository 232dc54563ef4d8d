package docstore

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"guest-portal-backend/internal/alerts"
)

// FirestoreStore backs the document store with Cloud Firestore. Firestore
// carries a native timestamp scalar, so time.Time fields pass through the
// client untouched.
type FirestoreStore struct {
	client *firestore.Client
	bus    *alerts.Bus
}

func NewFirestoreStore(ctx context.Context, projectID, databaseName string, bus *alerts.Bus) (*FirestoreStore, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firestore store: project id required")
	}
	if bus == nil {
		bus = alerts.Default
	}

	var client *firestore.Client
	var err error
	if databaseName != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseName)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("firestore store: new client: %w", err)
	}

	return &FirestoreStore{client: client, bus: bus}, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("firestore get %s/%s: %w", collection, id, err)
	}
	return snapshotToDocument(snap), nil
}

func (s *FirestoreStore) List(ctx context.Context, collection string, q Query) ([]Document, error) {
	it := s.buildQuery(collection, q).Documents(ctx)
	defer it.Stop()

	docs := make([]Document, 0)
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore list %s: %w", collection, err)
		}
		docs = append(docs, snapshotToDocument(snap))
	}
	return docs, nil
}

func (s *FirestoreStore) Create(ctx context.Context, collection, id string, doc Document) error {
	doc = Sanitize(doc)
	doc["id"] = id
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, doc); err != nil {
		if status.Code(err) == codes.PermissionDenied {
			return fmt.Errorf("firestore create %s/%s: %w", collection, id, ErrPermissionDenied)
		}
		return fmt.Errorf("firestore create %s/%s: %w", collection, id, err)
	}
	return nil
}

// Update replaces the named top-level fields wholesale, matching the
// MemoryStore contract. Set with MergeAll would deep-merge nested maps
// instead of replacing them.
func (s *FirestoreStore) Update(ctx context.Context, collection, id string, doc Document) error {
	doc = Sanitize(doc)
	if len(doc) == 0 {
		return nil
	}
	updates := make([]firestore.Update, 0, len(doc))
	for k, v := range doc {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: v})
	}
	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		switch status.Code(err) {
		case codes.NotFound:
			return ErrNotFound
		case codes.PermissionDenied:
			return fmt.Errorf("firestore update %s/%s: %w", collection, id, ErrPermissionDenied)
		}
		return fmt.Errorf("firestore update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("firestore delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// Subscribe runs a native snapshot listener. Listener failures cannot reach
// the caller (the unsubscribe handle is already returned), so they are
// published on the alert bus tagged with the collection context.
func (s *FirestoreStore) Subscribe(collection string, q Query, fn SnapshotFunc) func() {
	ctx, cancel := context.WithCancel(context.Background())
	it := s.buildQuery(collection, q).Snapshots(ctx)

	go func() {
		for {
			snap, err := it.Next()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.bus.Publish(subscriptionAlert(collection, err))
				return
			}

			docs := make([]Document, 0, snap.Size)
			docIt := snap.Documents
			for {
				d, err := docIt.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					s.bus.Publish(subscriptionAlert(collection, err))
					return
				}
				docs = append(docs, snapshotToDocument(d))
			}
			fn(docs)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			it.Stop()
		})
	}
}

func (s *FirestoreStore) buildQuery(collection string, q Query) firestore.Query {
	query := s.client.Collection(collection).Query
	for _, f := range q.Filters {
		query = query.Where(f.Field, "==", f.Value)
	}
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(q.OrderBy, dir)
	}
	return query
}

func snapshotToDocument(snap *firestore.DocumentSnapshot) Document {
	doc := snap.Data()
	if doc == nil {
		doc = Document{}
	}
	doc["id"] = snap.Ref.ID
	return doc
}

func subscriptionAlert(collection string, err error) alerts.Event {
	e := alerts.Event{
		Context: alerts.ContextFor(collection),
		Message: err.Error(),
	}
	if status.Code(err) == codes.PermissionDenied {
		e.Code = alerts.CodePermissionDenied
	}
	return e
}
