package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// HubConfig holds WebSocket settings for the change feed.
type HubConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	SendBuffer      int
	CheckOrigin     func(r *http.Request) bool
}

func DefaultHubConfig() HubConfig {
	return HubConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		SendBuffer:      64,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

// Hub broadcasts every published change event to all connected clients.
type Hub struct {
	config   HubConfig
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}

	broadcastCh chan []byte
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
	once sync.Once
}

func NewHub(config HubConfig) *Hub {
	return &Hub{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		clients:     make(map[*client]struct{}),
		broadcastCh: make(chan []byte, 256),
	}
}

// Run delivers queued events until ctx is done, then disconnects everyone.
func (h *Hub) Run(ctx context.Context) {
	log.Info().Msg("change feed hub started")
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			log.Info().Msg("change feed hub stopped")
			return
		case data := <-h.broadcastCh:
			h.broadcast(data)
		}
	}
}

// Publish queues event for broadcast. A full queue drops the event.
func (h *Hub) Publish(_ context.Context, event ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	select {
	case h.broadcastCh <- data:
		return nil
	default:
		log.Warn().Str("event_id", event.ID.String()).Msg("broadcast channel full, dropping event")
		return nil
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and subscribes the client to the feed.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade WebSocket connection")
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, h.config.SendBuffer),
		hub:  h,
	}
	h.register(c)

	go c.writePump()
	go c.readPump()

	log.Info().Str("connection_id", c.id).Str("remote", r.RemoteAddr).Msg("change feed client connected")
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok {
		c.once.Do(func() { close(c.send) })
		log.Info().Str("connection_id", c.id).Msg("change feed client disconnected")
	}
}

// broadcast sends under the read lock so unregister cannot close a send
// channel mid-delivery. Slow clients are dropped after the lock is released.
func (h *Hub) broadcast(data []byte) {
	var slow []*client

	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		log.Warn().Str("connection_id", c.id).Msg("client send buffer full, closing connection")
		h.unregister(c)
	}
}

func (h *Hub) closeAll() {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		h.unregister(c)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(c.hub.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.config.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Debug().Err(err).Str("connection_id", c.id).Msg("failed to write to WebSocket")
				c.hub.unregister(c)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.hub.unregister(c)
				return
			}
		}
	}
}

// readPump only services control frames; the feed is one way.
func (c *client) readPump() {
	defer c.hub.unregister(c)

	c.conn.SetReadLimit(c.hub.config.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.hub.config.ReadTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.hub.config.ReadTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("connection_id", c.id).Msg("unexpected WebSocket close")
			}
			return
		}
	}
}
