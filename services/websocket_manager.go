package services

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

// WebSocketManager fans live events (inbound turns, new leads) out to
// connected dashboard clients.
type WebSocketManager struct {
	connections map[string]*WebSocketConnection
	mu          sync.RWMutex
	broadcast   chan BroadcastMessage
}

// WebSocketConnection represents a single dashboard client connection
type WebSocketConnection struct {
	Conn     *websocket.Conn
	ConnID   string
	UserID   string
	Username string
	Send     chan []byte
}

// BroadcastMessage represents an event to fan out
type BroadcastMessage struct {
	Type string
	Data interface{}
}

// MessagePayload is the wire format of broadcast events
type MessagePayload struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

var wsManager *WebSocketManager
var once sync.Once

// GetWebSocketManager returns the singleton WebSocket manager
func GetWebSocketManager() *WebSocketManager {
	once.Do(func() {
		wsManager = &WebSocketManager{
			connections: make(map[string]*WebSocketConnection),
			broadcast:   make(chan BroadcastMessage, 100),
		}
		go wsManager.handleBroadcast()
	})
	return wsManager
}

// RegisterConnection registers a new dashboard client
func (m *WebSocketManager) RegisterConnection(conn *WebSocketConnection) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connections[conn.ConnID] = conn

	slog.Info("WebSocket connection registered",
		"connID", conn.ConnID,
		"userID", conn.UserID,
		"totalConnections", len(m.connections))
}

// UnregisterConnection removes a dashboard client
func (m *WebSocketManager) UnregisterConnection(connID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if conn, exists := m.connections[connID]; exists {
		close(conn.Send)
		delete(m.connections, connID)

		slog.Info("WebSocket connection unregistered",
			"connID", connID,
			"remainingConnections", len(m.connections))
	}
}

// Broadcast queues an event for all connected dashboard clients
func (m *WebSocketManager) Broadcast(eventType string, data interface{}) {
	select {
	case m.broadcast <- BroadcastMessage{Type: eventType, Data: data}:
	default:
		slog.Warn("WebSocket broadcast queue full, dropping event", "type", eventType)
	}
}

// handleBroadcast processes broadcast messages
func (m *WebSocketManager) handleBroadcast() {
	for message := range m.broadcast {
		payload := MessagePayload{
			Type:      message.Type,
			Data:      message.Data,
			Timestamp: time.Now().Unix(),
		}

		jsonData, err := json.Marshal(payload)
		if err != nil {
			slog.Error("Failed to marshal WebSocket message", "error", err)
			continue
		}

		m.mu.RLock()
		for _, conn := range m.connections {
			select {
			case conn.Send <- jsonData:
				// Message sent successfully
			default:
				// Connection buffer full, skip
				slog.Warn("WebSocket connection buffer full", "connID", conn.ConnID)
			}
		}
		m.mu.RUnlock()
	}
}
