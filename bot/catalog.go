package bot

import (
	"math/rand"
	"sync"
	"time"
)

const companyName = "Frecha iotech"

// TemplateKey identifies a named response slot in the catalog.
type TemplateKey string

const (
	KeyGreeting         TemplateKey = "greeting"
	KeyProviders        TemplateKey = "providers"
	KeyMainServices     TemplateKey = "main_services"
	KeyHelp             TemplateKey = "help"
	KeyBundleHelp       TemplateKey = "bundle_help"
	KeySMEHelp          TemplateKey = "sme_help"
	KeyGoodbye          TemplateKey = "goodbye"
	KeyContactInfo      TemplateKey = "contact_info"
	KeyLeadCapture      TemplateKey = "lead_capture"
	KeyLeadThanks       TemplateKey = "thank_lead"
	KeyLeadFailed       TemplateKey = "lead_failed"
	KeyProviderSpecific TemplateKey = "provider_specific"
	KeyPriceInquiry     TemplateKey = "price_inquiry"
	KeyLanguageSwitched TemplateKey = "language_switched"
	KeySMECta           TemplateKey = "sme_cta"
)

// Providers is the canonical provider order. Listings and the widget's
// quick actions both follow this order.
var Providers = []string{"Vodacom", "Yas", "Airtel", "Halotel"}

// BundlePlan is a single data plan offered by one provider.
// Prices are display strings, no arithmetic is ever done on them.
type BundlePlan struct {
	Name     string
	Price    string
	Data     string
	Speed    string // empty when the plan has no advertised speed
	Validity string
}

// SMEPackage is a business service package.
type SMEPackage struct {
	Name      string
	Price     string
	Features  []string
	Providers []string
}

// Catalog holds the static bilingual content: response templates,
// provider bundle plans and SME packages. All data is immutable after
// construction.
type Catalog struct {
	translations map[Language]map[TemplateKey][]string
	bundlePlans  map[string][]BundlePlan
	smePackages  []SMEPackage

	mu  sync.Mutex
	rng *rand.Rand
}

// NewCatalog builds the catalog with a time-seeded source for greeting
// variant selection.
func NewCatalog() *Catalog {
	return NewCatalogSeeded(time.Now().UnixNano())
}

// NewCatalogSeeded builds the catalog with a fixed seed so variant
// selection is deterministic in tests.
func NewCatalogSeeded(seed int64) *Catalog {
	return &Catalog{
		translations: loadTranslations(),
		bundlePlans:  loadBundlePlans(),
		smePackages:  loadSMEPackages(),
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Template returns the response string for a key in the given language,
// selecting uniformly at random when the key has multiple variants.
// An unknown key falls back to the key itself rather than failing.
func (c *Catalog) Template(key TemplateKey, lang Language) string {
	table, ok := c.translations[lang]
	if !ok {
		table = c.translations[Swahili]
	}

	variants, ok := table[key]
	if !ok || len(variants) == 0 {
		return string(key)
	}
	if len(variants) == 1 {
		return variants[0]
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return variants[c.rng.Intn(len(variants))]
}

// TemplateKeys returns every key present in the catalog.
func (c *Catalog) TemplateKeys() []TemplateKey {
	keys := make([]TemplateKey, 0, len(c.translations[English]))
	for key := range c.translations[English] {
		keys = append(keys, key)
	}
	return keys
}

// BundlePlans returns the plans for one provider (lower-case name).
func (c *Catalog) BundlePlans(provider string) ([]BundlePlan, bool) {
	plans, ok := c.bundlePlans[provider]
	return plans, ok
}

// AllBundlePlans returns every provider's plans keyed by display name,
// callers iterate in the canonical Providers order.
func (c *Catalog) AllBundlePlans() map[string][]BundlePlan {
	return c.bundlePlans
}

// SMEPackages returns the SME packages in declaration order.
func (c *Catalog) SMEPackages() []SMEPackage {
	return c.smePackages
}

func loadTranslations() map[Language]map[TemplateKey][]string {
	return map[Language]map[TemplateKey][]string{
		English: {
			KeyGreeting: {
				"Welcome to " + companyName + "! Your trusted partner for bundle routers and SME services. How can I assist you today?",
				"Hello! Welcome to " + companyName + " - connecting businesses with reliable internet solutions. What can I help you with?",
			},
			KeyProviders:    {"Our trusted providers: 🟥 Vodacom, 🟦 Yas, 🟨 Airtel, 🟩 Halotel"},
			KeyMainServices: {"We offer:\n📦 BUNDLE ROUTERS - Home & Business Internet\n🏢 SME SERVICES - Business Solutions\n💰 AFFORDABLE PRICING - Best rates"},
			KeyHelp:         {"I can help you with:\n• Bundle router plans & pricing\n• SME service packages\n• Provider comparisons\n• New connection setup\n• Technical support\n• Payment options"},
			KeyBundleHelp:   {"📦 BUNDLE ROUTERS - Choose from various data plans for home and business use"},
			KeySMEHelp:      {"🏢 SME SERVICES - Business-grade internet and dedicated support"},
			KeyGoodbye:      {"Thank you for choosing " + companyName + "!"},
			KeyContactInfo:  {"📞 Contact " + companyName + ":\nPhone: +255 757 315 593\nEmail: frechaiotech@gmail.com\nLocation: Dodoma"},
			KeyLeadCapture:  {"To serve you better, may I know:\n1. Your name\n2. Business location\n3. Current internet provider\n4. Your specific needs"},
			KeyLeadThanks:   {"Thank you {name}! Our team will contact you shortly."},
			KeyLeadFailed:   {"Sorry, we could not save your details right now. Please try again or call us on +255 757 315 593."},
			KeyProviderSpecific: {"Which provider? Vodacom, Yas, Airtel, or Halotel?"},
			KeyPriceInquiry:     {"What's your budget? We have options from TZS 10,000 to 100,000"},
			KeyLanguageSwitched: {"🌍 Switched to English! How can I help you?"},
			KeySMECta:           {"💬 Reply with a package name and we will set you up!"},
		},
		Swahili: {
			KeyGreeting: {
				"Karibu " + companyName + "! Mshirika wako wa kuaminika kwa bundle router na huduma za SME. Ninaweza kukusaidiaje leo?",
				"Hujambo! Karibu " + companyName + " - tunaunganisha biashara kwa suluhisho bora za intaneti. Ninaweza kukusaidia nini?",
			},
			KeyProviders:    {"Watoa huduma wetu: 🟥 Vodacom, 🟦 Yas, 🟨 Airtel, 🟩 Halotel"},
			KeyMainServices: {"Tunatoa:\n📦 BUNDLE ROUTER - Intaneti ya Nyumba na Biashara\n🏢 HUDUMA ZA SME - Suluhisho za Biashara\n💰 BEI NZURI - Bei bora zaidi"},
			KeyHelp:         {"Naweza kukusaidia kuhusu:\n• Mipango ya bundle router na bei\n• Vifurushi vya huduma za SME\n• Kulinganisha watoa huduma\n• Kuanzisha muunganisho mpya\n• Usaidizi wa kiufundi\n• Njia za malipo"},
			KeyBundleHelp:   {"📦 BUNDLE ROUTER - Chagua mipango mbalimbali ya data"},
			KeySMEHelp:      {"🏢 HUDUMA ZA SME - Intaneti ya kiwango cha biashara"},
			KeyGoodbye:      {"Asante kwa kuchagua " + companyName + "!"},
			KeyContactInfo:  {"📞 Wasiliana na " + companyName + ":\nSimu: +255 757 315 593\nBarua pepe: frechaiotech@gmail.com\nMahali: Dodoma"},
			KeyLeadCapture:  {"Ili kukuhudumia vyema, naomba kujua:\n1. Jina lako\n2. Mahali pa biashara\n3. Mtoa huduma wa sasa\n4. Mahitaji yako maalum"},
			KeyLeadThanks:   {"Asante {name}! Timu yetu itawasiliana nawe hivi karibuni."},
			KeyLeadFailed:   {"Samahani, hatukuweza kuhifadhi taarifa zako kwa sasa. Tafadhali jaribu tena au tupigie +255 757 315 593."},
			KeyProviderSpecific: {"Unapenda mtoa huduma gani? Vodacom, Yas, Airtel, au Halotel?"},
			KeyPriceInquiry:     {"Una bajeti ya kiasi gani? Tuna chaguzi kutoka TZS 10,000 hadi 100,000"},
			KeyLanguageSwitched: {"🌍 Nimebadilisha lugha kwa Kiswahili! Ninaweza kukusaidiaje?"},
			KeySMECta:           {"💬 Jibu na jina la kifurushi nasi tutakuunganisha!"},
		},
	}
}

func loadBundlePlans() map[string][]BundlePlan {
	return map[string][]BundlePlan{
		"vodacom": {
			{Name: "DATA PLAN", Price: "TZS 15,000", Data: "10GB", Validity: "30 days"},
			{Name: "UNLIMITED", Price: "TZS 240,000", Data: "Unlimited", Speed: "30Mbps", Validity: "30 days"},
		},
		"yas": {
			{Name: "Yas Home", Price: "TZS 10,000", Data: "10GB", Speed: "8Mbps", Validity: "30 days"},
			{Name: "Yas Router", Price: "TZS 250,000", Data: "unlimited", Speed: "30Mbps", Validity: "30 days"},
		},
		"airtel": {
			{Name: "Airtel Home", Price: "TZS 60,000", Data: "75GB", Speed: "10Mbps", Validity: "30 days"},
			{Name: "Airtel Router", Price: "TZS 100,000", Data: "unlimited", Speed: "25Mbps", Validity: "30 days"},
		},
		"halotel": {
			{Name: "Halo Home", Price: "TZS 46,000", Data: "60GB", Speed: "8Mbps", Validity: "30 days"},
			{Name: "Halo Business", Price: "TZS 38,000", Data: "50GB", Speed: "15Mbps", Validity: "30 days"},
		},
	}
}

func loadSMEPackages() []SMEPackage {
	return []SMEPackage{
		{
			Name:      "Startup Special",
			Price:     "TZS 70,000/month",
			Features:  []string{"Shared 10Mbps line", "Business router", "Basic support"},
			Providers: []string{"Yas", "Halotel", "Airtel"},
		},
		{
			Name:      "SME Premium",
			Price:     "TZS 100,000/month",
			Features:  []string{"Dedicated 50Mbps", "Advanced security", "24/7 Support"},
			Providers: []string{"Vodacom", "Airtel"},
		},
	}
}
