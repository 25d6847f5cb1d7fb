package bot

import (
	"regexp"
	"strings"
	"testing"
)

var placeholderPattern = regexp.MustCompile(`\{[a-z_]+\}`)

func TestTemplateKeysMatchAcrossLanguages(t *testing.T) {
	c := NewCatalogSeeded(1)

	english := c.translations[English]
	swahili := c.translations[Swahili]

	if len(english) != len(swahili) {
		t.Fatalf("Expected same number of keys, got %d english and %d swahili", len(english), len(swahili))
	}

	for key := range english {
		if _, ok := swahili[key]; !ok {
			t.Errorf("Key %q missing from swahili table", key)
		}
	}
}

func TestTemplateNonEmptyForAllKeys(t *testing.T) {
	c := NewCatalogSeeded(1)

	keys := c.TemplateKeys()
	if len(keys) == 0 {
		t.Fatal("Expected the catalog to declare template keys")
	}
	for _, lang := range []Language{English, Swahili} {
		for _, key := range keys {
			if got := c.Template(key, lang); strings.TrimSpace(got) == "" {
				t.Errorf("Template(%q, %q) returned empty string", key, lang)
			}
		}
	}
}

func TestTemplatePlaceholderParity(t *testing.T) {
	c := NewCatalogSeeded(1)

	for key, variants := range c.translations[English] {
		englishPlaceholders := placeholderSet(variants)
		swahiliPlaceholders := placeholderSet(c.translations[Swahili][key])

		if len(englishPlaceholders) != len(swahiliPlaceholders) {
			t.Errorf("Key %q: placeholder mismatch, english %v vs swahili %v", key, englishPlaceholders, swahiliPlaceholders)
			continue
		}
		for name := range englishPlaceholders {
			if !swahiliPlaceholders[name] {
				t.Errorf("Key %q: placeholder %q present in english but not swahili", key, name)
			}
		}
	}
}

func placeholderSet(variants []string) map[string]bool {
	set := map[string]bool{}
	for _, variant := range variants {
		for _, match := range placeholderPattern.FindAllString(variant, -1) {
			set[match] = true
		}
	}
	return set
}

func TestTemplateUnknownKeyFallsBackToKey(t *testing.T) {
	c := NewCatalogSeeded(1)

	if got := c.Template("no_such_key", English); got != "no_such_key" {
		t.Errorf("Expected fallback to key itself, got %q", got)
	}
}

func TestTemplateGreetingDeterministicWithSeed(t *testing.T) {
	a := NewCatalogSeeded(42)
	b := NewCatalogSeeded(42)

	for i := 0; i < 10; i++ {
		if got, want := a.Template(KeyGreeting, English), b.Template(KeyGreeting, English); got != want {
			t.Fatalf("Seeded catalogs diverged at call %d: %q vs %q", i, got, want)
		}
	}
}

func TestBundlePlansCanonicalProviders(t *testing.T) {
	c := NewCatalogSeeded(1)

	wantOrder := []string{"Vodacom", "Yas", "Airtel", "Halotel"}
	if len(Providers) != len(wantOrder) {
		t.Fatalf("Expected %d providers, got %d", len(wantOrder), len(Providers))
	}
	for i, provider := range wantOrder {
		if Providers[i] != provider {
			t.Errorf("Provider order position %d: expected %q, got %q", i, provider, Providers[i])
		}
		plans, ok := c.BundlePlans(strings.ToLower(provider))
		if !ok {
			t.Errorf("Expected plans for provider %q", provider)
			continue
		}
		if len(plans) == 0 {
			t.Errorf("Expected at least one plan for provider %q", provider)
		}
	}
}

func TestBundlePlansUnknownProvider(t *testing.T) {
	c := NewCatalogSeeded(1)

	if _, ok := c.BundlePlans("tigo"); ok {
		t.Error("Expected no plans for unknown provider")
	}
}

func TestSMEPackagesDeclarationOrder(t *testing.T) {
	c := NewCatalogSeeded(1)

	packages := c.SMEPackages()
	if len(packages) != 2 {
		t.Fatalf("Expected 2 SME packages, got %d", len(packages))
	}
	if packages[0].Name != "Startup Special" {
		t.Errorf("Expected first package 'Startup Special', got %q", packages[0].Name)
	}
	if packages[1].Name != "SME Premium" {
		t.Errorf("Expected second package 'SME Premium', got %q", packages[1].Name)
	}
}
