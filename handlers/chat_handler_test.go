package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestChatRejectsMissingMessage(t *testing.T) {
	app := fiber.New()
	app.Post("/chat", Chat)

	// A body without the message field and an unparseable body must both
	// be rejected before any reply is computed.
	for _, body := range []string{`{}`, `{"session_id":"abc"}`, `not json`} {
		req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Request with body %q failed: %v", body, err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("Body %q: expected 400, got %d", body, resp.StatusCode)
		}
	}
}

func TestHealth(t *testing.T) {
	app := fiber.New()
	app.Get("/health", Health)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected 200 from health check, got %d", resp.StatusCode)
	}
}
