package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"frecha-bot/bot"
	"frecha-bot/models"
	"frecha-bot/services"
)

// GetLeads lists captured leads with optional status filter and pagination
func GetLeads(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" && !models.IsValidLeadStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status filter",
		})
	}

	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	skip := c.QueryInt("skip", 0)

	leads, total, err := services.GetLeads(c.Context(), status, limit, skip)
	if err != nil {
		slog.Error("Failed to get leads", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get leads",
		})
	}

	return c.JSON(fiber.Map{
		"leads": leads,
		"total": total,
		"limit": limit,
		"skip":  skip,
	})
}

type updateLeadStatusRequest struct {
	Status string `json:"status"`
}

// UpdateLeadStatus moves a lead to another pipeline state
func UpdateLeadStatus(c *fiber.Ctx) error {
	leadID := c.Params("leadID")

	var req updateLeadStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if !models.IsValidLeadStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status, must be one of: new, contacted, converted, lost",
		})
	}

	if err := services.UpdateLeadStatus(c.Context(), leadID, models.LeadStatus(req.Status)); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Lead not found",
			})
		}
		slog.Error("Failed to update lead status", "error", err, "leadID", leadID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update lead status",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Lead status updated",
	})
}

// GetConversations lists logged conversations with optional language
// filter and pagination
func GetConversations(c *fiber.Ctx) error {
	language := c.Query("language")
	if language != "" && !bot.IsValidLanguage(language) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid language filter",
		})
	}

	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	skip := c.QueryInt("skip", 0)

	conversations, total, err := services.GetConversations(c.Context(), language, limit, skip)
	if err != nil {
		slog.Error("Failed to get conversations", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get conversations",
		})
	}

	return c.JSON(fiber.Map{
		"conversations": conversations,
		"total":         total,
		"limit":         limit,
		"skip":          skip,
	})
}

// GetSessionConversation returns the full exchange log of one chat session
func GetSessionConversation(c *fiber.Ctx) error {
	sessionID := c.Params("sessionID")

	conversations, err := services.GetSessionConversation(c.Context(), sessionID)
	if err != nil {
		slog.Error("Failed to get session conversation", "error", err, "sessionID", sessionID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get session conversation",
		})
	}

	return c.JSON(fiber.Map{
		"session_id":    sessionID,
		"conversations": conversations,
	})
}

// GetStats returns the daily snapshot for a given date (default today)
func GetStats(c *fiber.Ctx) error {
	day := time.Now()
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		}
		day = parsed
	}

	stats, err := services.GetDailyStats(c.Context(), day)
	if err != nil {
		slog.Error("Failed to get daily stats", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get stats",
		})
	}

	return c.JSON(stats)
}
