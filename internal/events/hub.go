package events

import (
	"encoding/json"

	"notes-server/internal/domain"

	"go.uber.org/zap"
)

type EventType string

const (
	TypeNoteCreated EventType = "note_created"
	TypeNoteUpdated EventType = "note_updated"
	TypeNoteDeleted EventType = "note_deleted"
)

// Event is the wire shape pushed to connected clients. Note is set for
// created/updated events, ID for deletions.
type Event struct {
	Type EventType            `json:"type"`
	Note *domain.NoteResponse `json:"note,omitempty"`
	ID   string               `json:"id,omitempty"`
}

// Hub fans note change events out to connected WebSocket clients.
// Registration, unregistration and broadcast all go through the Run loop,
// so the client set needs no locking. Delivery is best-effort: a client
// whose send buffer is full gets dropped.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Debug("event client registered", zap.Int("clients", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug("event client unregistered", zap.Int("clients", len(h.clients)))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					delete(h.clients, client)
					close(client.send)
					h.logger.Warn("event client send buffer full, dropping connection")
				}
			}
		}
	}
}

func (h *Hub) publish(event *Event) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("event broadcast buffer full, dropping event", zap.String("type", string(event.Type)))
	}
}

func (h *Hub) NoteCreated(note *domain.NoteResponse) {
	h.publish(&Event{Type: TypeNoteCreated, Note: note})
}

func (h *Hub) NoteUpdated(note *domain.NoteResponse) {
	h.publish(&Event{Type: TypeNoteUpdated, Note: note})
}

func (h *Hub) NoteDeleted(id string) {
	h.publish(&Event{Type: TypeNoteDeleted, ID: id})
}
