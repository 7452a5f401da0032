package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// RosterUpdate is pushed to every connected client after a successful roster
// mutation so open pages can re-fetch the list.
type RosterUpdate struct {
	Type     string `json:"type"` // always "roster_updated"
	Activity string `json:"activity"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// UpdatesHub tracks connected WebSocket clients and broadcasts roster
// updates to them. Implements services.Broadcaster.
type UpdatesHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewUpdatesHub() *UpdatesHub {
	return &UpdatesHub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// UpdatesWebSocketHandler upgrades the connection and keeps it registered
// until the client disconnects.
func (h *UpdatesHub) UpdatesWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	logrus.WithField("clients", h.ClientCount()).Info("Roster updates client connected")

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
		logrus.WithField("clients", h.ClientCount()).Info("Roster updates client disconnected")
	}()

	// Drain control/client frames; clients only listen on this socket.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// BroadcastRosterUpdate notifies every connected client that an activity's
// roster changed. Write failures drop the client.
func (h *UpdatesHub) BroadcastRosterUpdate(activity string) {
	update := RosterUpdate{Type: "roster_updated", Activity: activity}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(update); err != nil {
			logrus.WithError(err).Warn("Dropping unresponsive updates client")
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *UpdatesHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
