package settings

import (
	"errors"
	"strings"

	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrSettingsAreNotConstructed indicates that Settings were not created
	// through the NewSettings constructor function.
	ErrSettingsAreNotConstructed = errors.New("Settings must be created via NewSettings constructor")

	// ErrConfigurationIncomplete indicates that the shop is missing units or
	// currency the calculation depends on. The whole shipping method is
	// disabled upfront in that case; individual calculations never see it.
	ErrConfigurationIncomplete = errors.New("shop configuration is incomplete: weight unit, dimension unit and currency are required")
)

const (
	// DefaultMaxProducts is the cart unit count above which the flat rate
	// takes over from carrier-quoted rates.
	DefaultMaxProducts = 100

	// DefaultTitle is the method title shown when the shop has not renamed it.
	DefaultTitle = "Bring Fraktguiden"
)

// bringLanguages maps shop locale prefixes to the carrier's UI language
// codes. Unmapped locales fall back to English.
var bringLanguages = map[string]string{
	"dk": "da",
	"fi": "fi",
	"nb": "no",
	"nn": "no",
	"sv": "se",
}

// OverrideParams carries the raw pro-tier per-service override values as
// stored by the settings form: a fixed price and a free-shipping threshold,
// both as uninterpreted strings, plus the free-shipping toggle.
type OverrideParams struct {
	FixedPrice            string
	FreeShipping          bool
	FreeShippingThreshold string
}

// Params carries the raw configuration values read from the settings store.
// NewSettings interprets them once; the rest of the system only sees the
// typed Settings snapshot.
type Params struct {
	Enabled               bool
	Title                 string
	HandlingFee           string
	VAT                   string
	ServiceName           string
	DisplayDescription    bool
	Services              []string
	FromPostcode          string
	FromCountry           string
	PostOffice            bool
	RecipientNotification bool
	Locale                string
	MaxProducts           int
	FlatRate              string
	Overrides             map[string]OverrideParams
	Debug                 bool
	ClientURL             string

	// Shop-wide prerequisites; the method is disabled when any is missing.
	Currency      string
	WeightUnit    string
	DimensionUnit string
}

// Settings is the immutable, validated configuration snapshot one rate
// calculation runs against. It is captured once at load time; calculations
// never read ad hoc from the settings store.
type Settings struct {
	enabled               bool
	title                 string
	handlingFee           decimal.Decimal
	vatMode               VATMode
	namePolicy            NamePolicy
	displayDescription    bool
	services              []string
	fromPostcode          string
	fromCountry           string
	postOffice            bool
	recipientNotification bool
	language              string
	maxProducts           int
	flatRate              *decimal.Decimal
	overrides             map[string]rates.Override
	debug                 bool
	clientURL             string

	guard guard.ConstructorGuard
}

// NewSettings validates and interprets raw settings values into a typed
// snapshot. Returns ErrConfigurationIncomplete when the shop lacks the
// weight unit, dimension unit or currency; free-form fields that fail to
// parse report their own validation errors.
func NewSettings(p Params) (Settings, error) {
	if p.WeightUnit == "" || p.DimensionUnit == "" || p.Currency == "" {
		return Settings{}, ErrConfigurationIncomplete
	}

	vatMode, err := VATModeFromString(p.VAT)
	if err != nil {
		return Settings{}, err
	}

	namePolicy, err := NamePolicyFromString(p.ServiceName)
	if err != nil {
		return Settings{}, err
	}

	handlingFee := decimal.Zero
	if p.HandlingFee != "" {
		handlingFee, err = decimal.NewFromString(p.HandlingFee)
		if err != nil {
			return Settings{}, err
		}
	}

	title := p.Title
	if title == "" {
		title = DefaultTitle
	}

	maxProducts := p.MaxProducts
	if maxProducts <= 0 {
		maxProducts = DefaultMaxProducts
	}

	// A blanked flat rate disables the fallback entirely.
	var flatRate *decimal.Decimal
	if p.FlatRate != "" {
		rate, rateErr := decimal.NewFromString(p.FlatRate)
		if rateErr != nil {
			return Settings{}, rateErr
		}
		flatRate = &rate
	}

	return Settings{
		enabled:               p.Enabled,
		title:                 title,
		handlingFee:           handlingFee,
		vatMode:               vatMode,
		namePolicy:            namePolicy,
		displayDescription:    p.DisplayDescription,
		services:              append([]string(nil), p.Services...),
		fromPostcode:          p.FromPostcode,
		fromCountry:           p.FromCountry,
		postOffice:            p.PostOffice,
		recipientNotification: p.RecipientNotification,
		language:              bringLanguage(p.Locale),
		maxProducts:           maxProducts,
		flatRate:              flatRate,
		overrides:             parseOverrides(p.Overrides),
		debug:                 p.Debug,
		clientURL:             p.ClientURL,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// bringLanguage maps the shop locale to the carrier's UI language code.
func bringLanguage(locale string) string {
	prefix := strings.ToLower(locale)
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	if lang, ok := bringLanguages[prefix]; ok {
		return lang
	}
	return "en"
}

// parseOverrides interprets the raw per-service override strings.
// Values that do not parse as numbers are treated as absent, which for a
// free-shipping threshold means the service is always free once the toggle
// is on.
func parseOverrides(raw map[string]OverrideParams) map[string]rates.Override {
	overrides := make(map[string]rates.Override, len(raw))
	for key, p := range raw {
		override := rates.Override{FreeShipping: p.FreeShipping}

		if price, err := decimal.NewFromString(p.FixedPrice); err == nil && !price.IsNegative() {
			override.FixedPrice = &price
		}
		if threshold, err := decimal.NewFromString(p.FreeShippingThreshold); err == nil {
			override.FreeShippingThreshold = &threshold
		}

		overrides[strings.ToUpper(key)] = override
	}
	return overrides
}

// Validate ensures the settings were created through the constructor.
func (s Settings) Validate() error {
	return s.guard.Validate(ErrSettingsAreNotConstructed)
}

// Enabled reports whether the shipping method is switched on.
func (s Settings) Enabled() bool {
	return s.enabled
}

// Title returns the method title shown to the shopper.
func (s Settings) Title() string {
	return s.title
}

// HandlingFee returns the flat fee added to every carrier-quoted rate.
func (s Settings) HandlingFee() decimal.Decimal {
	return s.handlingFee
}

// VATMode returns the configured price selection mode.
func (s Settings) VATMode() VATMode {
	return s.vatMode
}

// NamePolicy returns the configured service labeling policy.
func (s Settings) NamePolicy() NamePolicy {
	return s.namePolicy
}

// DisplayDescription reports whether service labels carry the carrier's
// description text as a suffix.
func (s Settings) DisplayDescription() bool {
	return s.displayDescription
}

// Services returns the selected service allow-list. An empty list admits
// every product the carrier offers.
func (s Settings) Services() []string {
	return append([]string(nil), s.services...)
}

// FromPostcode returns the origin postcode shipments are sent from.
func (s Settings) FromPostcode() string {
	return s.fromPostcode
}

// FromCountry returns the origin country code.
func (s Settings) FromCountry() string {
	return s.fromCountry
}

// PostOffice reports whether parcels are posted at a post office.
func (s Settings) PostOffice() bool {
	return s.postOffice
}

// RecipientNotification reports whether the recipient is notified over SMS
// or e-mail instead of the carrier's paper notification.
func (s Settings) RecipientNotification() bool {
	return s.recipientNotification
}

// Language returns the carrier UI language code derived from the shop locale.
func (s Settings) Language() string {
	return s.language
}

// MaxProducts returns the cart unit count above which the flat rate applies.
func (s Settings) MaxProducts() int {
	return s.maxProducts
}

// FlatRate returns the configured flat fallback cost.
// The second return is false when the fallback is disabled.
func (s Settings) FlatRate() (decimal.Decimal, bool) {
	if s.flatRate == nil {
		return decimal.Zero, false
	}
	return *s.flatRate, true
}

// Overrides returns the pro-tier per-service override table keyed by
// upper-cased service id.
func (s Settings) Overrides() map[string]rates.Override {
	return s.overrides
}

// Debug reports whether debug logging of requests and rates is enabled.
func (s Settings) Debug() bool {
	return s.debug
}

// ClientURL returns the shop host reported to the carrier API.
func (s Settings) ClientURL() string {
	return s.clientURL
}
