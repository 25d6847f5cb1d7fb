package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"frecha-bot/models"
	"frecha-bot/services"
)

// ChatRequest is the inbound chat payload. Message is a pointer so an
// absent field is distinguishable from an empty string: absent is
// rejected, empty falls through to the help reply.
type ChatRequest struct {
	Message   *string `json:"message"`
	SessionID string  `json:"session_id,omitempty"`
}

// ChatResponse is returned for every chat turn
type ChatResponse struct {
	Response  string    `json:"response"`
	Language  string    `json:"language"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat handles one conversational turn. The reply is computed
// synchronously; logging and the dashboard broadcast run in the
// background and never delay or fail the reply.
func Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil || req.Message == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No message provided",
		})
	}
	message := *req.Message

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	session := services.GetChatSession(sessionID)
	reply := responder.Respond(message, session)
	session.AddTurn(message, reply)
	language := string(session.Language())

	// Fire-and-forget conversation logging
	go func() {
		logCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := services.SaveConversation(logCtx, &models.Conversation{
			SessionID:   sessionID,
			UserMessage: message,
			BotResponse: reply,
			Language:    language,
			Timestamp:   time.Now(),
		})
		if err != nil {
			slog.Error("Failed to save conversation", "error", err, "sessionID", sessionID)
		}
	}()

	// Live feed for the dashboard
	services.GetWebSocketManager().Broadcast("new_turn", fiber.Map{
		"session_id":   sessionID,
		"user_message": message,
		"bot_response": reply,
		"language":     language,
	})

	return c.JSON(ChatResponse{
		Response:  reply,
		Language:  language,
		SessionID: sessionID,
		Timestamp: time.Now(),
	})
}

// Health is a simple liveness check
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "frecha-bot",
	})
}
