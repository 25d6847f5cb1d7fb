package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingFields signals a lead payload without the required name or
// contact fields. The transport layer decides the user-facing message.
var ErrMissingFields = errors.New("lead payload missing required fields")

// LeadPayload carries a prospective customer's details.
type LeadPayload struct {
	Name     string
	Location string
	Provider string
	Needs    string
	Contact  string
}

// LeadStore persists captured leads.
type LeadStore interface {
	RecordLead(ctx context.Context, payload LeadPayload, lang Language) error
}

// LeadNotifier alerts the sales team about a new lead. Implementations
// are fire-and-forget; the capture result never depends on them.
type LeadNotifier interface {
	NotifyNewLead(payload LeadPayload, lang Language)
}

// LeadResult is the outcome of a capture attempt.
type LeadResult struct {
	Success bool
	Message string
}

// LeadCapture validates, persists and announces sales leads.
type LeadCapture struct {
	catalog  *Catalog
	store    LeadStore
	notifier LeadNotifier
}

func NewLeadCapture(catalog *Catalog, store LeadStore, notifier LeadNotifier) *LeadCapture {
	return &LeadCapture{
		catalog:  catalog,
		store:    store,
		notifier: notifier,
	}
}

// Capture hands the payload to the store and, on success, triggers the
// new-lead notification and returns the thank-you message with the
// lead's name substituted in. Store failures come back as errors for
// the transport layer to report; they are never raised to the user.
func (lc *LeadCapture) Capture(ctx context.Context, payload LeadPayload, lang Language) (LeadResult, error) {
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Contact) == "" {
		return LeadResult{}, ErrMissingFields
	}

	if err := lc.store.RecordLead(ctx, payload, lang); err != nil {
		return LeadResult{}, fmt.Errorf("record lead: %w", err)
	}

	if lc.notifier != nil {
		lc.notifier.NotifyNewLead(payload, lang)
	}

	thanks := strings.ReplaceAll(lc.catalog.Template(KeyLeadThanks, lang), "{name}", payload.Name)
	return LeadResult{Success: true, Message: thanks}, nil
}
