package websocket

import "encoding/json"

// Feed names understood by the snapshot streamer. Scoped variants append a
// tenant id after a colon, e.g. "services:tenant-vista".
const (
	FeedTenants    = "tenants"
	FeedCategories = "categories"
	FeedServices   = "services"
	FeedRequests   = "requests"
)

type Room struct {
	Id      string               `json:"id"`
	Clients map[string]*WSClient `json:"clients"`

	// Latest is replayed to clients joining after the first snapshot so a
	// new subscriber never waits for the next change.
	Latest *WSMessage `json:"-"`
}

// WSMessage is one full-snapshot frame. Every change on a feed produces a
// complete snapshot, never a delta.
type WSMessage struct {
	Feed      string          `json:"feed"`
	Snapshot  json.RawMessage `json:"snapshot"`
	Timestamp int64           `json:"timestamp"`
}

type RoomRes struct {
	ID string `json:"id"`
}
