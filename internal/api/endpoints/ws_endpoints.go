package endpoints

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"guest-portal-backend/internal/websocket"
)

type WSEndpoints interface {
	Feed(http.ResponseWriter, *http.Request) error
	Rooms(http.ResponseWriter, *http.Request) error
}

type wsEndpoints struct {
	handler *websocket.Handler
	// feedPrefix is stripped off the path to recover the feed name.
	feedPrefix string
}

func NewWSEndpoints(handler *websocket.Handler, feedPrefix string) WSEndpoints {
	return &wsEndpoints{handler: handler, feedPrefix: feedPrefix}
}

func (h *wsEndpoints) Feed(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleFeed,
	})
}

func (h *wsEndpoints) Rooms(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleRooms,
	})
}

func (h *wsEndpoints) handleFeed(w http.ResponseWriter, r *http.Request) error {
	feed := pathID(r, h.feedPrefix)
	if feed == "" {
		return badRequest("Missing feed name", fmt.Errorf("ws feed: empty feed in path %s", r.URL.Path))
	}

	// Join upgrades the connection and writes its own errors from here on.
	h.handler.Join(w, r, feed, uuid.NewString())
	return nil
}

func (h *wsEndpoints) handleRooms(w http.ResponseWriter, r *http.Request) error {
	h.handler.GetRooms(w, r)
	return nil
}
