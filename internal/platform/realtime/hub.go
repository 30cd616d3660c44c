// Package realtime empuja eventos por websocket a los clientes suscriptos a un topic
// (en este servicio, el id de una planilla).
package realtime

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"inpatient-chart/internal/platform/logger"

	"github.com/gorilla/websocket"
)

const (
	// Tiempo máximo para escribir un mensaje al cliente.
	writeWait = 10 * time.Second

	// Tiempo máximo sin recibir un pong.
	pongWait = 60 * time.Second

	// Debe ser menor que pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Los clientes solo mandan pings de aplicación.
	maxMessageSize = 1024

	sendBufferSize = 32
)

var ErrClosed = errors.New("hub closed")

// Message es lo que puede mandar el cliente.
type Message struct {
	Type string `json:"type"` // ping
}

type pong struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

type Hub struct {
	log      logger.Logger
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	topics map[string]map[*client]struct{}
	closed bool
}

// NewHub: checkOrigin nil acepta cualquier origen.
func NewHub(log logger.Logger, checkOrigin func(r *http.Request) bool) *Hub {
	if log == nil {
		log = logger.NewNop()
	}
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
		topics: make(map[string]map[*client]struct{}),
	}
}

// Serve hace el upgrade, manda first y bloquea hasta que el cliente se desconecta.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, topic string, first any) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		conn:  conn,
		topic: topic,
		send:  make(chan []byte, sendBufferSize),
	}
	if first != nil {
		b, err := json.Marshal(first)
		if err != nil {
			conn.Close()
			return err
		}
		c.send <- b
	}

	if !h.add(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		conn.Close()
		return ErrClosed
	}

	h.log.Debug("live client connected", map[string]any{"topic": topic, "clients": h.Subscribers(topic)})

	go c.writePump()
	c.readPump(h)
	return nil
}

// Publish no bloquea: un cliente con el buffer lleno se desconecta.
func (h *Hub) Publish(topic string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		h.log.Error("live event marshal failed", map[string]any{"topic": topic, "error": err.Error()})
		return
	}

	var slow []*client

	h.mu.RLock()
	for c := range h.topics[topic] {
		select {
		case c.send <- b:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.log.Warn("live client too slow, dropping", map[string]any{"topic": topic})
		h.remove(c)
	}
}

func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Close desconecta a todos los clientes; Serve rechaza conexiones nuevas.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for topic, set := range h.topics {
		for c := range set {
			close(c.send)
		}
		delete(h.topics, topic)
	}
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	set, ok := h.topics[c.topic]
	if !ok {
		set = make(map[*client]struct{})
		h.topics[c.topic] = set
	}
	set[c] = struct{}{}
	return true
}

// remove es idempotente: el canal send se cierra una sola vez.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.topics[c.topic]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.topics, c.topic)
	}
}

type client struct {
	conn  *websocket.Conn
	topic string
	send  chan []byte
}

func (c *client) readPump(h *Hub) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.log.Warn("live client read error", map[string]any{"topic": c.topic, "error": err.Error()})
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "ping" {
			continue
		}
		b, _ := json.Marshal(pong{Type: "pong", Timestamp: time.Now().UTC().Format(time.RFC3339)})

		// send puede estar cerrado si el hub nos sacó; mismo lock que remove.
		h.mu.RLock()
		if _, ok := h.topics[c.topic][c]; ok {
			select {
			case c.send <- b:
			default:
			}
		}
		h.mu.RUnlock()
	}
}

// writePump escribe un frame por evento (cada uno es un JSON completo).
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
