package bot

import (
	"strings"
	"testing"
)

func newTestResponder() *Responder {
	return NewResponder(NewCatalogSeeded(1))
}

func isGreeting(c *Catalog, reply string, lang Language) bool {
	for _, variant := range c.translations[lang][KeyGreeting] {
		if reply == variant {
			return true
		}
	}
	return false
}

func TestRespondEmptyInputReturnsHelp(t *testing.T) {
	r := newTestResponder()
	session := NewSession()

	for _, input := range []string{"", "   ", "\t\n"} {
		if got, want := r.Respond(input, session), r.catalog.Template(KeyHelp, Swahili); got != want {
			t.Errorf("Respond(%q): expected help template, got %q", input, got)
		}
	}
}

func TestRespondUnknownInputReturnsHelp(t *testing.T) {
	r := newTestResponder()
	session := NewSession()

	if got, want := r.Respond("asdkfjal", session), r.catalog.Template(KeyHelp, Swahili); got != want {
		t.Errorf("Expected help template for unknown input, got %q", got)
	}
}

func TestRespondLanguageSwitch(t *testing.T) {
	r := newTestResponder()
	session := NewSession()

	got := r.Respond("english", session)
	if session.Language() != English {
		t.Errorf("Expected session language english, got %q", session.Language())
	}
	if want := r.catalog.Template(KeyLanguageSwitched, English); got != want {
		t.Errorf("Expected switch confirmation in english, got %q", got)
	}

	// Idempotent
	got = r.Respond("english", session)
	if session.Language() != English {
		t.Errorf("Expected language to stay english, got %q", session.Language())
	}
	if want := r.catalog.Template(KeyLanguageSwitched, English); got != want {
		t.Errorf("Expected switch confirmation again, got %q", got)
	}

	got = r.Respond("kiswahili", session)
	if session.Language() != Swahili {
		t.Errorf("Expected session language swahili, got %q", session.Language())
	}
	if want := r.catalog.Template(KeyLanguageSwitched, Swahili); got != want {
		t.Errorf("Expected switch confirmation in swahili, got %q", got)
	}
}

func TestRespondGreetingBeatsProviderRule(t *testing.T) {
	r := newTestResponder()
	session := NewSession()
	session.SetLanguage(English)

	got := r.Respond("hello vodacom", session)
	if !isGreeting(r.catalog, got, English) {
		t.Errorf("Expected greeting for 'hello vodacom', got %q", got)
	}
	if strings.Contains(got, "VODACOM PLANS") {
		t.Error("Provider rule fired before greeting rule")
	}
}

func TestRespondProviderScopedBundleInquiry(t *testing.T) {
	r := newTestResponder()
	session := NewSession()

	got := r.Respond("vodacom bundle", session)
	if !strings.Contains(got, "VODACOM PLANS") {
		t.Errorf("Expected vodacom listing header, got %q", got)
	}
	if !strings.Contains(got, "DATA PLAN") || !strings.Contains(got, "TZS 15,000") {
		t.Errorf("Expected vodacom plan name and price, got %q", got)
	}
	if strings.Contains(got, "Airtel Home") || strings.Contains(got, "Halo Home") {
		t.Errorf("Expected only vodacom plans, got %q", got)
	}
}

func TestRespondAllProvidersInCanonicalOrder(t *testing.T) {
	r := newTestResponder()
	session := NewSession()

	got := r.Respond("bundle", session)

	lastIndex := -1
	for _, provider := range []string{"Vodacom", "Yas", "Airtel", "Halotel"} {
		index := strings.Index(got, "**"+provider+"**")
		if index == -1 {
			t.Fatalf("Provider %q missing from all-providers listing: %q", provider, got)
		}
		if index < lastIndex {
			t.Errorf("Provider %q out of canonical order", provider)
		}
		lastIndex = index
	}
}

func TestRespondBareProviderName(t *testing.T) {
	r := newTestResponder()
	session := NewSession()

	got := r.Respond("halotel", session)
	if !strings.Contains(got, "HALOTEL PLANS") {
		t.Errorf("Expected halotel listing for bare provider name, got %q", got)
	}
}

func TestRespondSMEListing(t *testing.T) {
	r := newTestResponder()
	session := NewSession()

	got := r.Respond("nina biashara", session)
	if !strings.Contains(got, "SME PACKAGES") {
		t.Errorf("Expected SME listing, got %q", got)
	}
	if !strings.Contains(got, "Startup Special: TZS 70,000/month") {
		t.Errorf("Expected startup package with price, got %q", got)
	}
	if !strings.Contains(got, "Providers: Yas, Halotel, Airtel") {
		t.Errorf("Expected provider eligibility list, got %q", got)
	}
	// Feature preview is limited to the first two features
	if !strings.Contains(got, "Shared 10Mbps line, Business router") {
		t.Errorf("Expected two-feature preview, got %q", got)
	}
	if strings.Contains(got, "Basic support") {
		t.Errorf("Expected third feature to be truncated, got %q", got)
	}
	// Trailing call to action in the session language
	if !strings.Contains(got, r.catalog.Template(KeySMECta, Swahili)) {
		t.Errorf("Expected call to action line, got %q", got)
	}
}

func TestRespondTemplateRules(t *testing.T) {
	r := newTestResponder()

	tests := []struct {
		input string
		key   TemplateKey
	}{
		{"msaada", KeyHelp},
		{"price please", KeyPriceInquiry},
		{"wasiliana nasi", KeyContactInfo},
		{"nataka nunua", KeyLeadCapture},
		{"bye", KeyGoodbye},
	}

	for _, tt := range tests {
		session := NewSession()
		if got, want := r.Respond(tt.input, session), r.catalog.Template(tt.key, Swahili); got != want {
			t.Errorf("Respond(%q): expected %q template, got %q", tt.input, tt.key, got)
		}
	}
}

func TestRespondSubstringMatchingQuirk(t *testing.T) {
	r := newTestResponder()
	session := NewSession()
	session.SetLanguage(English)

	// "chips" contains "hi", so the greeting rule fires. Substring
	// containment without word boundaries is the documented behavior.
	got := r.Respond("chips", session)
	if !isGreeting(r.catalog, got, English) {
		t.Errorf("Expected greeting for input containing 'hi' substring, got %q", got)
	}
}

func TestSessionIsolation(t *testing.T) {
	r := newTestResponder()

	english := NewSession()
	swahili := NewSession()

	r.Respond("english", english)

	if english.Language() != English {
		t.Errorf("Expected switched session to be english, got %q", english.Language())
	}
	if swahili.Language() != Swahili {
		t.Errorf("Expected untouched session to stay swahili, got %q", swahili.Language())
	}

	if got, want := r.Respond("msaada", swahili), r.catalog.Template(KeyHelp, Swahili); got != want {
		t.Errorf("Expected swahili help for untouched session, got %q", got)
	}
	if got, want := r.Respond("help", english), r.catalog.Template(KeyHelp, English); got != want {
		t.Errorf("Expected english help for switched session, got %q", got)
	}
}
