package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"frecha-bot/bot"
	"frecha-bot/models"
)

func TestSendMailPostsJSON(t *testing.T) {
	var received mailRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("Failed to decode mail request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "secret-key", "admin@example.com")

	if err := n.sendMail(context.Background(), "Test subject", "Test body"); err != nil {
		t.Fatalf("sendMail failed: %v", err)
	}

	if received.To != "admin@example.com" {
		t.Errorf("Expected recipient admin@example.com, got %q", received.To)
	}
	if received.Subject != "Test subject" {
		t.Errorf("Expected subject 'Test subject', got %q", received.Subject)
	}
	if received.Body != "Test body" {
		t.Errorf("Expected body 'Test body', got %q", received.Body)
	}
	if authHeader != "Bearer secret-key" {
		t.Errorf("Expected bearer auth header, got %q", authHeader)
	}
}

func TestSendMailRejectedByAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "", "admin@example.com")

	if err := n.sendMail(context.Background(), "subject", "body"); err == nil {
		t.Error("Expected error when the mail API rejects the request")
	}
}

func TestSendMailDisabledWithoutURL(t *testing.T) {
	n := NewNotifier("", "", "admin@example.com")

	if err := n.sendMail(context.Background(), "subject", "body"); err != nil {
		t.Errorf("Expected disabled delivery to succeed silently, got %v", err)
	}
}

func TestNotifyDailySummaryDelivery(t *testing.T) {
	var received mailRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "", "admin@example.com")

	stats := &models.DailyStats{
		Date:        "2026-08-30",
		TotalTurns:  12,
		TurnsByLang: map[string]int64{"swahili": 8, "english": 4},
		TopMessages: []models.MessageCount{
			{Message: "bundle", Count: 5},
			{Message: "mambo", Count: 3},
		},
		NewLeads: 2,
	}

	if err := n.NotifyDailySummary(context.Background(), stats); err != nil {
		t.Fatalf("NotifyDailySummary failed: %v", err)
	}

	if !strings.Contains(received.Subject, "2026-08-30") {
		t.Errorf("Expected date in subject, got %q", received.Subject)
	}
	for _, want := range []string{"Total turns: 12", "swahili: 8", "english: 4", "New leads: 2", "5x bundle"} {
		if !strings.Contains(received.Body, want) {
			t.Errorf("Expected summary body to contain %q, got %q", want, received.Body)
		}
	}
}

func TestFormatDailySummaryStableLanguageOrder(t *testing.T) {
	stats := &models.DailyStats{
		Date:        "2026-08-30",
		TotalTurns:  12,
		TurnsByLang: map[string]int64{"swahili": 8, "english": 4},
	}

	for i := 0; i < 10; i++ {
		body := formatDailySummary(stats)

		english := strings.Index(body, "english: 4")
		swahili := strings.Index(body, "swahili: 8")
		if english == -1 || swahili == -1 {
			t.Fatalf("Expected both language lines, got %q", body)
		}
		if english > swahili {
			t.Fatalf("Expected language lines in sorted order, got %q", body)
		}
	}
}

func TestFormatLeadAlert(t *testing.T) {
	payload := bot.LeadPayload{
		Name:     "Juma",
		Location: "Dodoma",
		Provider: "Airtel",
		Needs:    "Office internet",
		Contact:  "+255700000001",
	}

	body := formatLeadAlert(payload, bot.Swahili)

	for _, want := range []string{"Juma", "Dodoma", "Airtel", "Office internet", "+255700000001", "swahili"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected lead alert to contain %q, got %q", want, body)
		}
	}
}

func TestFormatLeadAlertOmitsEmptyFields(t *testing.T) {
	body := formatLeadAlert(bot.LeadPayload{Name: "Asha", Contact: "+255700000002"}, bot.English)

	if strings.Contains(body, "Location:") {
		t.Errorf("Expected empty location to be omitted, got %q", body)
	}
	if strings.Contains(body, "Current provider:") {
		t.Errorf("Expected empty provider to be omitted, got %q", body)
	}
}
