package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"frecha-bot/models"
	"frecha-bot/services"
)

// Session lookup and extension, swappable in tests.
var (
	lookupSession = services.GetSessionByID
	extendSession = services.ExtendSession
)

func RequireAuth(c *fiber.Ctx) error {
	// Get session ID from cookie
	sessionID := c.Cookies(services.SessionCookieName)
	if sessionID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	// Get session from database
	session, err := lookupSession(c.Context(), sessionID)
	if err != nil {
		slog.Error("Failed to get session", "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	if session == nil || !session.IsActive || session.ExpiresAt.Before(time.Now()) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired session",
		})
	}

	// Set user information in locals for downstream handlers
	c.Locals("user_id", session.UserID)
	c.Locals("email", session.Email)
	c.Locals("role", session.Role)
	c.Locals("username", session.Username)

	// Extend session expiration on activity
	extendSession(c.Context(), sessionID)

	return c.Next()
}

// RequireRole restricts a route to the given roles, admin always passes
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleStr, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied",
			})
		}

		currentRole := models.UserRole(roleStr)
		if currentRole == models.RoleAdmin {
			return c.Next()
		}

		for _, allowedRole := range roles {
			if currentRole == allowedRole {
				return c.Next()
			}
		}

		slog.Info("Access denied", "user_role", currentRole, "required_roles", roles)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient permissions",
		})
	}
}
