package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"frecha-bot/bot"
	"frecha-bot/services"
)

// LeadRequest is the structured lead capture payload
type LeadRequest struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	Provider  string `json:"provider"`
	Needs     string `json:"needs"`
	Contact   string `json:"contact"`
	SessionID string `json:"session_id,omitempty"`
}

// CaptureLead accepts a lead payload from the widget's lead form. The
// thank-you message comes back in the session's current language.
func CaptureLead(c *fiber.Ctx) error {
	var req LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	// Leads inherit the language of the conversation they came from;
	// without a session the default applies.
	lang := bot.Swahili
	if req.SessionID != "" {
		lang = services.GetChatSession(req.SessionID).Language()
	}

	payload := bot.LeadPayload{
		Name:     req.Name,
		Location: req.Location,
		Provider: req.Provider,
		Needs:    req.Needs,
		Contact:  req.Contact,
	}

	result, err := leadCapture.Capture(c.Context(), payload, lang)
	if err != nil {
		if errors.Is(err, bot.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Name and contact are required",
			})
		}

		slog.Error("Failed to capture lead", "error", err, "name", req.Name)
		return c.JSON(fiber.Map{
			"success": false,
			"message": catalog.Template(bot.KeyLeadFailed, lang),
		})
	}

	services.GetWebSocketManager().Broadcast("new_lead", fiber.Map{
		"name":     req.Name,
		"location": req.Location,
		"provider": req.Provider,
		"language": string(lang),
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": result.Message,
	})
}
