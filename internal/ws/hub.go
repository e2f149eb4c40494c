package ws

import (
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event is the envelope broadcast to connected clients whenever the catalog
// or the ledger changes.
type Event struct {
	EventID string      `json:"eventId"`
	Type    string      `json:"type"`   // "stock_update"
	Action  string      `json:"action"` // "product_created", "product_updated", "movement_applied", ...
	Data    interface{} `json:"data"`
}

// NewEvent builds a stock_update event with a fresh id.
func NewEvent(action string, data interface{}) Event {
	return Event{
		EventID: uuid.NewString(),
		Type:    "stock_update",
		Action:  action,
		Data:    data,
	}
}

// Hub fans events out to all connected websocket clients.
type Hub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 64),
		log:        log,
	}
}

// Register adds a client connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Unregister removes a client connection and closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// Publish marshals the event and queues it for broadcast. Events are dropped
// when the broadcast buffer is full rather than blocking a committed write.
func (h *Hub) Publish(event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Str("action", event.Action).Msg("ws: marshal event")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn().Str("action", event.Action).Msg("ws: broadcast buffer full, event dropped")
	}
}

// Run owns the client set. Start it once as a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
			h.log.Debug().Int("clients", len(h.clients)).Msg("ws: client connected")

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}

		case message := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}
