// Package spectate streams read-only game snapshots to websocket clients.
package spectate

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

const writeTimeout = 2 * time.Second

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
}

// Hub is an http.Handler that upgrades spectators to websockets and fans out
// snapshots to them. Spectators cannot send commands; inbound messages are
// read and discarded.
type Hub struct {
	upgrader websocket.Upgrader
	log      zerolog.Logger

	mu      sync.Mutex
	clients map[uuid.UUID]*client
	latest  []byte
	closed  bool
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		log:      log,
		clients:  make(map[uuid.UUID]*client),
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		http.Error(w, "spectator hub closed", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}

	c := &client{id: uuid.New(), conn: conn}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c.id] = c
	if h.latest != nil && !h.write(c, h.latest) {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	h.log.Info().Stringer("client", c.id).Str("remote", r.RemoteAddr).Msg("spectator joined")

	go h.discard(c)
}

// discard drains inbound frames so control messages are processed, and
// removes the client once the connection fails.
func (h *Hub) discard(c *client) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c.id]
	delete(h.clients, c.id)
	h.mu.Unlock()

	if ok {
		c.conn.Close()
		h.log.Info().Stringer("client", c.id).Msg("spectator left")
	}
}

// write sends data to c, dropping the client on failure. h.mu must be held.
func (h *Hub) write(c *client, data []byte) bool {
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.log.Debug().Err(err).Stringer("client", c.id).Msg("dropping spectator")
		delete(h.clients, c.id)
		c.conn.Close()
		return false
	}
	return true
}

// Broadcast stores s as the latest snapshot and sends it to every client.
func (h *Hub) Broadcast(s tetris.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.latest = data
	for _, c := range h.clients {
		h.write(c, data)
	}
	return nil
}

// Len returns the number of connected spectators.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every spectator and rejects new ones.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, c := range h.clients {
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeTimeout))
		c.conn.Close()
		delete(h.clients, id)
	}
	return nil
}
