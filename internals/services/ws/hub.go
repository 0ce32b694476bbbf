// Package ws keeps the live message fan-out. Clients subscribe to a
// workshop room over /ws/messages/:workshopId and receive every message
// persisted for that workshop.
package ws

import (
	"log"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gofiber/websocket/v2"
)

type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: map[string]map[*websocket.Conn]struct{}{}}
}

func (h *Hub) join(room string, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = map[*websocket.Conn]struct{}{}
	}
	h.rooms[room][c] = struct{}{}
}

func (h *Hub) leave(room string, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[room], c)
	if len(h.rooms[room]) == 0 {
		delete(h.rooms, room)
	}
}

// Broadcast sends the payload to every subscriber of the room. Connections
// that fail to write are dropped.
func (h *Hub) Broadcast(room string, payload interface{}) {
	data, err := sonic.Marshal(payload)
	if err != nil {
		log.Printf("[ERROR] sérialisation websocket: %v", err)
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.leave(room, c)
			_ = c.Close()
		}
	}
}

// Handler upgrades the connection and keeps it subscribed to the room until
// the peer disconnects. Incoming frames are discarded, the socket is
// receive-only from the client's point of view.
func (h *Hub) Handler() func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		room := c.Params("workshopId")
		if room == "" {
			_ = c.Close()
			return
		}
		h.join(room, c)
		defer func() {
			h.leave(room, c)
			_ = c.Close()
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}
}
