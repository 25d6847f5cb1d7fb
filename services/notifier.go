package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"frecha-bot/bot"
	"frecha-bot/models"
)

// Notifier delivers admin alerts through a mail delivery API. All
// notifications are best effort: failures are logged and dropped, the
// conversational reply never waits on them.
type Notifier struct {
	apiURL     string
	apiKey     string
	adminEmail string
	client     *http.Client
	limiter    *RateLimiter
}

// NewNotifier creates a notifier. An empty apiURL disables delivery,
// notifications are then logged only.
func NewNotifier(apiURL, apiKey, adminEmail string) *Notifier {
	return &Notifier{
		apiURL:     apiURL,
		apiKey:     apiKey,
		adminEmail: adminEmail,
		client:     &http.Client{Timeout: 15 * time.Second},
		limiter:    NewRateLimiter(10),
	}
}

// NotifyNewLead alerts the sales team about a freshly captured lead.
// Fire-and-forget: delivery runs in the background.
func (n *Notifier) NotifyNewLead(payload bot.LeadPayload, lang bot.Language) {
	subject := fmt.Sprintf("New lead: %s", payload.Name)
	body := formatLeadAlert(payload, lang)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := n.sendMail(ctx, subject, body); err != nil {
			slog.Error("Failed to send new lead alert", "error", err, "lead", payload.Name)
		}
	}()
}

// NotifyDailySummary mails the aggregated stats snapshot for one day.
func (n *Notifier) NotifyDailySummary(ctx context.Context, stats *models.DailyStats) error {
	subject := fmt.Sprintf("Daily chatbot summary %s", stats.Date)

	if err := n.sendMail(ctx, subject, formatDailySummary(stats)); err != nil {
		return fmt.Errorf("send daily summary: %w", err)
	}
	return nil
}

type mailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (n *Notifier) sendMail(ctx context.Context, subject, body string) error {
	if n.apiURL == "" {
		slog.Info("Mail delivery disabled, dropping notification", "subject", subject)
		return nil
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return err
	}

	jsonData, err := json.Marshal(mailRequest{
		To:      n.adminEmail,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.apiKey)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		slog.Error("Mail API rejected notification", "status", resp.StatusCode, "body", string(respBody))
		return fmt.Errorf("mail API: %s", resp.Status)
	}

	return nil
}

func formatLeadAlert(payload bot.LeadPayload, lang bot.Language) string {
	var b strings.Builder
	b.WriteString("A new lead was captured by the chatbot.\n\n")
	b.WriteString("Name: " + payload.Name + "\n")
	if payload.Location != "" {
		b.WriteString("Location: " + payload.Location + "\n")
	}
	if payload.Provider != "" {
		b.WriteString("Current provider: " + payload.Provider + "\n")
	}
	if payload.Needs != "" {
		b.WriteString("Needs: " + payload.Needs + "\n")
	}
	b.WriteString("Contact: " + payload.Contact + "\n")
	b.WriteString("Language: " + string(lang) + "\n")
	return b.String()
}

func formatDailySummary(stats *models.DailyStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Chatbot summary for %s\n\n", stats.Date)
	fmt.Fprintf(&b, "Total turns: %d\n", stats.TotalTurns)
	langs := make([]string, 0, len(stats.TurnsByLang))
	for lang := range stats.TurnsByLang {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		fmt.Fprintf(&b, "  %s: %d\n", lang, stats.TurnsByLang[lang])
	}
	fmt.Fprintf(&b, "New leads: %d\n", stats.NewLeads)

	if len(stats.TopMessages) > 0 {
		b.WriteString("\nTop messages:\n")
		for _, mc := range stats.TopMessages {
			fmt.Fprintf(&b, "  %dx %s\n", mc.Count, mc.Message)
		}
	}
	return b.String()
}
