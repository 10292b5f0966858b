package websocket

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeWorksheetMarked MessageType = "WORKSHEET_MARKED"
	MessageTypeWorksheetFailed MessageType = "WORKSHEET_FAILED"
	MessageTypeError           MessageType = "ERROR"
)

type WebSocketMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type Client struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Conn      *websocket.Conn
	Hub       *Hub
	Send      chan WebSocketMessage
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	notify     chan sessionMessage
	mu         sync.RWMutex
}

type sessionMessage struct {
	sessionID uuid.UUID
	message   WebSocketMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		notify:     make(chan sessionMessage),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case msg := <-h.notify:
			h.sendToSession(msg.sessionID, msg.message)
		}
	}
}

// NotifySession delivers a message to every connection the session holds.
// Safe to call from any goroutine, including asynq workers.
func (h *Hub) NotifySession(sessionID uuid.UUID, message WebSocketMessage) {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	h.notify <- sessionMessage{sessionID: sessionID, message: message}
}

func (h *Hub) sendToSession(sessionID uuid.UUID, message WebSocketMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if client.SessionID != sessionID {
			continue
		}
		select {
		case client.Send <- message:
		default:
			// Slow consumer; drop the message rather than block the hub
		}
	}
}
