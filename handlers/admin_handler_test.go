package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestGetConversationsRejectsUnknownLanguage(t *testing.T) {
	app := fiber.New()
	app.Get("/admin/conversations", GetConversations)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/conversations?language=french", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400 for unknown language filter, got %d", resp.StatusCode)
	}
}

func TestGetLeadsRejectsUnknownStatus(t *testing.T) {
	app := fiber.New()
	app.Get("/admin/leads", GetLeads)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/leads?status=stale", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400 for unknown status filter, got %d", resp.StatusCode)
	}
}
