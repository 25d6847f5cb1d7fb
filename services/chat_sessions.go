package services

import (
	"context"
	"log/slog"
	"time"

	"frecha-bot/bot"
)

const chatSessionMaxIdle = 2 * time.Hour

var chatSessions = bot.NewSessionManager()

// GetChatSession returns the conversation state for a chat session ID,
// creating it on first contact. Each conversation gets its own state;
// language switches never leak between sessions.
func GetChatSession(sessionID string) *bot.Session {
	return chatSessions.Get(sessionID)
}

// StartChatSessionCleanup starts a background goroutine that evicts
// idle in-memory chat sessions.
func StartChatSessionCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Info("Chat session cleanup stopped")
				return
			case <-ticker.C:
				if removed := chatSessions.Cleanup(chatSessionMaxIdle); removed > 0 {
					slog.Info("Cleaned up idle chat sessions", "count", removed, "remaining", chatSessions.Len())
				}
			}
		}
	}()

	slog.Info("Chat session cleanup started")
}
