package bot

import (
	"strings"
)

// Keyword sets for intent detection. Matching is plain substring
// containment on the lowered input - no word boundaries. A message
// containing "sme" inside a longer word matches the SME rule too;
// this mirrors the behavior the widget's quick actions rely on.
var (
	englishKeywords  = []string{"english", "kiingereza"}
	swahiliKeywords  = []string{"swahili", "kiswahili"}
	greetingKeywords = []string{"hello", "hi", "hey", "mambo", "habari", "hujambo"}
	helpKeywords     = []string{"help", "msaada"}
	bundleKeywords   = []string{"bundle", "router", "data", "intaneti"}
	smeKeywords      = []string{"sme", "business", "biashara"}
	priceKeywords    = []string{"price", "cost", "bei"}
	contactKeywords  = []string{"contact", "call", "simu", "wasiliana"}
	orderKeywords    = []string{"buy", "purchase", "order", "nunua", "agiza"}
	farewellKeywords = []string{"bye", "quit", "kwaheri"}
)

// Responder maps free-text user messages to catalog responses.
// It is stateless itself; all mutable context lives in the Session.
type Responder struct {
	catalog *Catalog
}

func NewResponder(catalog *Catalog) *Responder {
	return &Responder{catalog: catalog}
}

// Catalog exposes the content catalog the responder draws from.
func (r *Responder) Catalog() *Catalog {
	return r.catalog
}

// Respond classifies the message and produces the reply. Rules are
// priority ordered, first match wins. A language-switch request
// short-circuits everything else and answers in the new language.
// Unrecognized input falls back to the help template, never an error.
func (r *Responder) Respond(text string, session *Session) string {
	if strings.TrimSpace(text) == "" {
		return r.catalog.Template(KeyHelp, session.Language())
	}

	normalized := strings.ToLower(strings.TrimSpace(text))

	if containsAny(normalized, englishKeywords) {
		session.SetLanguage(English)
		return r.catalog.Template(KeyLanguageSwitched, English)
	}
	if containsAny(normalized, swahiliKeywords) {
		session.SetLanguage(Swahili)
		return r.catalog.Template(KeyLanguageSwitched, Swahili)
	}

	lang := session.Language()

	switch {
	case containsAny(normalized, greetingKeywords):
		return r.catalog.Template(KeyGreeting, lang)
	case containsAny(normalized, helpKeywords):
		return r.catalog.Template(KeyHelp, lang)
	case containsAny(normalized, bundleKeywords):
		return r.handleBundleInquiry(normalized)
	case containsAny(normalized, smeKeywords):
		return r.formatSMEPackages(lang)
	case r.mentionedProvider(normalized) != "":
		return r.formatProviderPlans(r.mentionedProvider(normalized))
	case containsAny(normalized, priceKeywords):
		return r.catalog.Template(KeyPriceInquiry, lang)
	case containsAny(normalized, contactKeywords):
		return r.catalog.Template(KeyContactInfo, lang)
	case containsAny(normalized, orderKeywords):
		return r.catalog.Template(KeyLeadCapture, lang)
	case containsAny(normalized, farewellKeywords):
		return r.catalog.Template(KeyGoodbye, lang)
	default:
		return r.catalog.Template(KeyHelp, lang)
	}
}

// handleBundleInquiry shows one provider's plans when the message names
// a provider, otherwise every provider's plans.
func (r *Responder) handleBundleInquiry(normalized string) string {
	if provider := r.mentionedProvider(normalized); provider != "" {
		return r.formatProviderPlans(provider)
	}
	return r.formatAllPlans()
}

// mentionedProvider returns the first provider name (lower-case) that
// appears in the text, scanning the canonical provider order.
func (r *Responder) mentionedProvider(normalized string) string {
	for _, provider := range Providers {
		if strings.Contains(normalized, strings.ToLower(provider)) {
			return strings.ToLower(provider)
		}
	}
	return ""
}

// formatProviderPlans renders one provider's full plan listing.
func (r *Responder) formatProviderPlans(provider string) string {
	plans, ok := r.catalog.BundlePlans(provider)
	if !ok {
		return "Provider not found."
	}

	var b strings.Builder
	b.WriteString("📦 " + strings.ToUpper(provider) + " PLANS:\n\n")
	for _, plan := range plans {
		b.WriteString("• " + plan.Name + ": " + plan.Price + "\n")
		b.WriteString("  Data: " + plan.Data + "\n")
		if plan.Speed != "" {
			b.WriteString("  Speed: " + plan.Speed + "\n")
		}
		b.WriteString("  Validity: " + plan.Validity + "\n\n")
	}
	return b.String()
}

// formatAllPlans renders a compact listing of every provider's plans
// in canonical provider order.
func (r *Responder) formatAllPlans() string {
	var b strings.Builder
	b.WriteString("📦 BUNDLE PLANS:\n\n")
	for _, provider := range Providers {
		plans, ok := r.catalog.BundlePlans(strings.ToLower(provider))
		if !ok {
			continue
		}
		b.WriteString("**" + provider + "**\n")
		for _, plan := range plans {
			b.WriteString("• " + plan.Name + ": " + plan.Price + " - " + plan.Data + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatSMEPackages renders every SME package with a short feature
// preview and a call to action.
func (r *Responder) formatSMEPackages(lang Language) string {
	var b strings.Builder
	b.WriteString("🏢 SME PACKAGES:\n\n")
	for _, pkg := range r.catalog.SMEPackages() {
		b.WriteString("• " + pkg.Name + ": " + pkg.Price + "\n")
		b.WriteString("  Providers: " + strings.Join(pkg.Providers, ", ") + "\n")
		preview := pkg.Features
		if len(preview) > 2 {
			preview = preview[:2]
		}
		b.WriteString("  Features: " + strings.Join(preview, ", ") + "\n\n")
	}
	b.WriteString(r.catalog.Template(KeySMECta, lang))
	return b.String()
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
