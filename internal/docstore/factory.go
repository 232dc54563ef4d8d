package docstore

import (
	"context"
	"fmt"

	"guest-portal-backend/internal/alerts"
	"guest-portal-backend/internal/env"
)

// Open builds the Store selected by DOCSTORE_BACKEND: "memory" (default),
// "firestore", or "dynamo".
func Open(ctx context.Context, bus *alerts.Bus) (Store, error) {
	backend := env.GetOrDefault(env.DocstoreBackend, "memory")
	switch backend {
	case "memory":
		return NewMemoryStore(), nil
	case "firestore":
		return NewFirestoreStore(ctx, env.MustGet(env.FirestoreProject), env.Get(env.FirestoreDatabase), bus)
	case "dynamo":
		return NewDynamoStore(ctx, DynamoConfigFromEnv(), bus)
	}
	return nil, fmt.Errorf("docstore: unknown backend %q", backend)
}
