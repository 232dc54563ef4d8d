package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub    *Hub
	opener *FeedOpener

	mu    sync.Mutex
	feeds map[string]func()
}

func NewHandler(h *Hub, opener *FeedOpener) *Handler {
	return &Handler{
		hub:    h,
		opener: opener,
		feeds:  make(map[string]func()),
	}
}

// OpenFeed makes sure the feed's room exists and its document subscription is
// running. Opening the same feed twice is a no-op.
func (h *Handler) OpenFeed(feed string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.feeds[feed]; exists {
		return nil
	}

	setRooms(h.hub.openRoom(feed))

	unsubscribe, err := h.opener.Open(feed, func(msg *WSMessage) {
		h.hub.Broadcast <- msg
	})
	if err != nil {
		return err
	}
	h.feeds[feed] = unsubscribe
	return nil
}

// CloseFeed stops the subscription behind a feed. Connected clients keep
// their sockets but receive no further frames.
func (h *Handler) CloseFeed(feed string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if unsubscribe, ok := h.feeds[feed]; ok {
		unsubscribe()
		delete(h.feeds, feed)
	}
}

// Join upgrades the connection and attaches the client to a feed.
func (h *Handler) Join(w http.ResponseWriter, r *http.Request, feed, clientID string) {
	if err := h.OpenFeed(feed); err != nil {
		http.Error(w, "Unknown feed", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cl := &WSClient{
		Conn:     conn,
		Message:  make(chan *WSMessage, 10),
		ID:       clientID,
		Feed:     feed,
		done:     make(chan struct{}),
		isClosed: false,
	}

	h.hub.Register <- cl

	go cl.keepAlive()
	go cl.writeMessage()
	go cl.readMessage(h.hub)
}

func (h *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms := make([]RoomRes, 0)

	for _, id := range h.hub.roomIDs() {
		rooms = append(rooms, RoomRes{
			ID: id,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rooms); err != nil {
		log.Printf("Error encoding rooms response: %v", err)
	}
}
