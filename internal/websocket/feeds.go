package websocket

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/model"
)

// FeedOpener turns feed names into live document subscriptions. Each open
// feed pushes a complete snapshot frame on every change.
type FeedOpener struct {
	tenants    *collections.Tenants
	categories *collections.Categories
	services   *collections.Services
	requests   *collections.Requests
}

func NewFeedOpener(store docstore.Store) *FeedOpener {
	return &FeedOpener{
		tenants:    collections.NewTenants(store),
		categories: collections.NewCategories(store),
		services:   collections.NewServices(store),
		requests:   collections.NewRequests(store),
	}
}

// Open starts the subscription behind a feed and pushes every snapshot into
// send. The returned function stops the subscription.
func (f *FeedOpener) Open(feed string, send func(*WSMessage)) (func(), error) {
	name, scope := splitFeed(feed)

	switch name {
	case FeedTenants:
		return f.tenants.SubscribeAll(snapshotPusher[model.Tenant](feed, send)), nil
	case FeedCategories:
		return f.categories.SubscribeAll(snapshotPusher[model.ServiceCategory](feed, send)), nil
	case FeedServices:
		if scope != "" {
			return f.services.SubscribeByTenant(scope, snapshotPusher[model.Service](feed, send)), nil
		}
		return f.services.SubscribeAll(snapshotPusher[model.Service](feed, send)), nil
	case FeedRequests:
		if scope != "" {
			return f.requests.SubscribeByTenant(scope, snapshotPusher[model.ServiceRequest](feed, send)), nil
		}
		return f.requests.SubscribeAll(snapshotPusher[model.ServiceRequest](feed, send)), nil
	default:
		return nil, fmt.Errorf("websocket: unknown feed %q", feed)
	}
}

// snapshotPusher marshals a typed snapshot list into one frame.
func snapshotPusher[T any](feed string, send func(*WSMessage)) func([]T) {
	return func(items []T) {
		payload, err := json.Marshal(items)
		if err != nil {
			log.Printf("Error marshaling snapshot for feed %s: %v", feed, err)
			return
		}
		send(&WSMessage{
			Feed:      feed,
			Snapshot:  payload,
			Timestamp: time.Now().Unix(),
		})
	}
}

func splitFeed(feed string) (name, scope string) {
	name, scope, _ = strings.Cut(feed, ":")
	return name, scope
}
