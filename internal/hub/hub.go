// Package hub owns the live websocket clients and delivers events to the
// three broadcast scopes: one connection, one room, or everyone. Room scope
// is resolved through the room index at send time, never cached.
package hub

import (
	"encoding/json"
	"sync"

	"github.com/AdityaSingh6666/Chat-Room/internal/registry"
	"github.com/AdityaSingh6666/Chat-Room/pkg/log"
)

type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client // connection ID -> client
	rooms   *registry.RoomIndex
}

func New(rooms *registry.RoomIndex) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   rooms,
	}
}

// Register adds a freshly upgraded connection to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.clients[client.ID] = client
	count := len(h.clients)
	h.mu.Unlock()

	log.L().Info().
		Str(log.FieldConnID, client.ID).
		Str(log.FieldRemoteAddr, client.RemoteAddr()).
		Int("total_clients", count).
		Msg("client registered")
}

// Unregister removes the client and closes its send channel. Safe to call
// more than once for the same client.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	_, ok := h.clients[client.ID]
	if ok {
		delete(h.clients, client.ID)
	}
	count := len(h.clients)
	h.mu.Unlock()

	if !ok {
		return
	}
	close(client.send)

	log.L().Info().
		Str(log.FieldConnID, client.ID).
		Int("total_clients", count).
		Msg("client unregistered")
}

// SendTo delivers an event to a single connection. Unknown connections are
// ignored; delivery is fire-and-forget.
func (h *Hub) SendTo(connID string, event any) {
	data, ok := h.marshal(event)
	if !ok {
		return
	}

	h.mu.RLock()
	client := h.clients[connID]
	delivered := client == nil || client.enqueue(data)
	h.mu.RUnlock()

	if !delivered {
		h.drop(client)
	}
}

// SendToRoom delivers an event to every current member of the room, minus
// the excluded connection if any.
func (h *Hub) SendToRoom(room string, event any, exclude string) {
	data, ok := h.marshal(event)
	if !ok {
		return
	}

	members := h.rooms.MembersOf(room)

	var failed []*Client
	h.mu.RLock()
	for _, member := range members {
		if member.ID == exclude {
			continue
		}
		client := h.clients[member.ID]
		if client == nil {
			continue
		}
		if !client.enqueue(data) {
			failed = append(failed, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range failed {
		h.drop(client)
	}
}

// SendToAll delivers an event to every connected client, in or out of a
// room.
func (h *Hub) SendToAll(event any) {
	data, ok := h.marshal(event)
	if !ok {
		return
	}

	var failed []*Client
	h.mu.RLock()
	for _, client := range h.clients {
		if !client.enqueue(data) {
			failed = append(failed, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range failed {
		h.drop(client)
	}
}

// ClientCount reports the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown closes every live connection. Pumps observe the closed
// connections and unwind on their own.
func (h *Hub) Shutdown() {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if client.conn != nil {
			client.conn.Close()
		}
	}

	log.L().Info().Int("total_clients", len(clients)).Msg("closed all client connections")
}

func (h *Hub) marshal(event any) ([]byte, bool) {
	data, err := json.Marshal(event)
	if err != nil {
		log.L().Error().Err(err).Msg("failed to marshal outbound event")
		return nil, false
	}
	return data, true
}

// drop unregisters a client whose send buffer is full; its pumps shut down
// once the channel closes.
func (h *Hub) drop(client *Client) {
	log.L().Warn().Str(log.FieldConnID, client.ID).Msg("client dropped due to full send buffer")
	h.Unregister(client)
}
