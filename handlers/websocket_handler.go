package handlers

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"frecha-bot/services"
)

// WebSocketUpgrade upgrades HTTP connection to WebSocket
func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("allowed", true)
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWebSocket streams live chat turns and new leads to an
// authenticated dashboard client.
func HandleWebSocket(c *websocket.Conn) {
	userID, _ := c.Locals("user_id").(string)
	username, _ := c.Locals("username").(string)

	conn := &services.WebSocketConnection{
		Conn:     c,
		ConnID:   uuid.New().String(),
		UserID:   userID,
		Username: username,
		Send:     make(chan []byte, 256),
	}

	wsManager := services.GetWebSocketManager()
	wsManager.RegisterConnection(conn)
	defer wsManager.UnregisterConnection(conn.ConnID)

	slog.Info("WebSocket connection established",
		"connID", conn.ConnID,
		"userID", userID)

	// Send initial connection success message
	welcomeMsg := map[string]interface{}{
		"type":    "connected",
		"message": "WebSocket connection established",
	}
	if welcomeData, err := json.Marshal(welcomeMsg); err == nil {
		c.WriteMessage(websocket.TextMessage, welcomeData)
	}

	go handleWebSocketSend(conn)
	handleWebSocketReceive(conn)
}

// handleWebSocketSend pushes broadcast events to the client and keeps
// the connection alive with pings.
func handleWebSocketSend(conn *services.WebSocketConnection) {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		conn.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			conn.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Channel closed
				conn.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				slog.Error("Failed to write WebSocket message", "error", err)
				return
			}

		case <-ticker.C:
			conn.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleWebSocketReceive drains client messages until the connection
// closes; the feed is one-way, inbound frames are ignored.
func handleWebSocketReceive(conn *services.WebSocketConnection) {
	for {
		if _, _, err := conn.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("WebSocket read error", "error", err, "connID", conn.ConnID)
			}
			return
		}
	}
}
