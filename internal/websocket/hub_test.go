package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"
)

func newTestHub(feed string) *Hub {
	hub := NewHub()
	hub.openRoom(feed)
	go hub.Run()
	return hub
}

func receiveFrame(t *testing.T, client *WSClient) *WSMessage {
	t.Helper()
	select {
	case msg := <-client.Message:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no frame delivered")
		return nil
	}
}

func TestHubBroadcastsToRoomClients(t *testing.T) {
	hub := newTestHub(FeedTenants)

	client := &WSClient{ID: "c-1", Feed: FeedTenants, Message: make(chan *WSMessage, 8)}
	hub.Register <- client

	frame := &WSMessage{Feed: FeedTenants, Snapshot: json.RawMessage(`[]`), Timestamp: 1}
	hub.Broadcast <- frame

	if got := receiveFrame(t, client); got.Feed != FeedTenants {
		t.Fatalf("frame = %#v", got)
	}
}

func TestHubReplaysLatestSnapshotToLateJoiner(t *testing.T) {
	hub := newTestHub(FeedServices)

	hub.Broadcast <- &WSMessage{Feed: FeedServices, Snapshot: json.RawMessage(`[{"id":"svc-1"}]`), Timestamp: 1}

	late := &WSClient{ID: "c-late", Feed: FeedServices, Message: make(chan *WSMessage, 8)}
	hub.Register <- late

	got := receiveFrame(t, late)
	if string(got.Snapshot) != `[{"id":"svc-1"}]` {
		t.Fatalf("replayed snapshot = %s", got.Snapshot)
	}
}

func TestHubIgnoresUnknownFeed(t *testing.T) {
	hub := newTestHub(FeedTenants)

	client := &WSClient{ID: "c-1", Feed: "weather", Message: make(chan *WSMessage, 1)}
	hub.Register <- client

	// A broadcast for an unopened feed is dropped without panicking.
	hub.Broadcast <- &WSMessage{Feed: "weather", Snapshot: json.RawMessage(`[]`)}

	select {
	case msg := <-client.Message:
		t.Fatalf("unexpected frame: %#v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := newTestHub(FeedRequests)

	slow := &WSClient{ID: "c-slow", Feed: FeedRequests, Message: make(chan *WSMessage)}
	hub.Register <- slow

	// Nobody reads the slow client's channel; the second broadcast finds it
	// full and evicts it.
	hub.Broadcast <- &WSMessage{Feed: FeedRequests, Snapshot: json.RawMessage(`[]`), Timestamp: 1}
	hub.Broadcast <- &WSMessage{Feed: FeedRequests, Snapshot: json.RawMessage(`[]`), Timestamp: 2}

	select {
	case _, open := <-slow.Message:
		if open {
			// First frame may have been buffered by the runtime rendezvous;
			// the channel must be closed by the next read.
			if _, open := <-slow.Message; open {
				t.Fatal("slow client still registered")
			}
		}
	case <-time.After(time.Second):
		t.Fatal("slow client channel never closed")
	}
}

func TestHubRoomCreationDuringBroadcast(t *testing.T) {
	hub := newTestHub(FeedTenants)

	// Room creation runs on the HTTP path while Run serves broadcasts; both
	// touch the room map and must be safe to interleave.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		feed := fmt.Sprintf("%s:%d", FeedRequests, i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.openRoom(feed)
		}()
		go func() {
			defer wg.Done()
			hub.Broadcast <- &WSMessage{Feed: FeedTenants, Snapshot: json.RawMessage(`[]`)}
		}()
	}
	wg.Wait()

	if got := len(hub.roomIDs()); got != 33 {
		t.Fatalf("room count = %d, want 33", got)
	}
}
