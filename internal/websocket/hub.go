package websocket

import "sync"

// Hub owns the room map. Room creation happens on the HTTP path while Run
// serves the channel loop, so the map itself is guarded by mu; the clients
// and the latest frame inside a Room are only touched by Run.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	Register   chan *WSClient
	Unregister chan *WSClient
	Broadcast  chan *WSMessage
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		Register:   make(chan *WSClient),
		Unregister: make(chan *WSClient),
		Broadcast:  make(chan *WSMessage),
	}
}

// openRoom creates the feed's room if it does not exist yet and reports the
// resulting room count.
func (h *Hub) openRoom(feed string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[feed]; !ok {
		h.rooms[feed] = &Room{
			Id:      feed,
			Clients: make(map[string]*WSClient),
		}
	}
	return len(h.rooms)
}

func (h *Hub) room(feed string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room, ok := h.rooms[feed]
	return room, ok
}

func (h *Hub) roomIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.rooms))
	for id := range h.rooms {
		ids = append(ids, id)
	}
	return ids
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			room, ok := h.room(client.Feed)
			if !ok {
				// The feed was never opened; drop the registration.
				continue
			}
			room.Clients[client.ID] = client
			incConnections()

			// Late joiners get the current snapshot right away.
			if room.Latest != nil {
				select {
				case client.Message <- room.Latest:
				default:
				}
			}

		case client := <-h.Unregister:
			room, ok := h.room(client.Feed)
			if !ok {
				continue
			}
			if _, ok := room.Clients[client.ID]; ok {
				delete(room.Clients, client.ID)
				close(client.Message)
				decConnections()
			}

		case message := <-h.Broadcast:
			room, ok := h.room(message.Feed)
			if !ok {
				continue
			}
			room.Latest = message

			delivered := 0
			for _, client := range room.Clients {
				select {
				case client.Message <- message:
					delivered++
				default:
					close(client.Message)
					delete(room.Clients, client.ID)
					decConnections()
				}
			}
			if delivered > 0 {
				addDelivered(delivered)
			}
		}
	}
}
