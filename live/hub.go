// Package live pushes capacity updates to connected registration pages
// over WebSocket, so the "vagas restantes" card updates without polling.
package live

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/passa-a-bola/platform/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Message is the wire envelope pushed to clients.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const TypeCapacityUpdated = "CAPACITY_UPDATED"

// Hub fans capacity snapshots out to every connected client. There is a
// single event, so there are no rooms; every client gets every update.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	clients map[*Client]bool
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 8),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("live client connected", slog.Int("clients", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
				h.logger.Info("live client disconnected", slog.Int("clients", len(h.clients)))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop it rather than block the hub.
					delete(h.clients, client)
					client.closeSend()
				}
			}
		}
	}
}

// CapacityUpdated implements services.CapacityNotifier.
func (h *Hub) CapacityUpdated(state models.CapacityState) {
	body, err := json.Marshal(Message{Type: TypeCapacityUpdated, Payload: state})
	if err != nil {
		h.logger.Error("failed to marshal capacity update", slog.Any("error", err))
		return
	}
	select {
	case h.broadcast <- body:
	default:
		h.logger.Warn("live broadcast channel full, dropping capacity update")
	}
}

// Client is one WebSocket connection managed by the hub.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 16),
	}
}

// Register attaches the client to the hub and starts its pumps. The
// initial snapshot, if any, is queued before the first broadcast can race
// ahead of it.
func (c *Client) Register(initial []byte) {
	if initial != nil {
		c.send <- initial
	}
	c.hub.register <- c
	go c.writePump()
	go c.readPump()
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		close(c.send)
		c.closed = true
	}
}

// readPump discards inbound frames; the feed is one-way. Its job is to
// notice disconnects and keep the pong deadline fresh.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
