// internal/restaurant/enums.go
//
// Closed string enums for the config model.
//
// Each enum keeps an explicit unknown value so the invalid case is a
// reachable state rather than a silently-accepted free-form string.  Parse
// helpers never fail; callers decide whether unknown is an error (it is for
// templates, it is not for identity type).

package restaurant

//
// Currency
//

// Currency is the menu display currency.
type Currency string

const (
	CurrencyFCFA    Currency = "FCFA"
	CurrencyEUR     Currency = "EUR"
	CurrencyUSD     Currency = "USD"
	CurrencyUnknown Currency = ""
)

// DefaultCurrency applies when the source omits menu.currency.
const DefaultCurrency = CurrencyFCFA

// ParseCurrency maps a raw string to a known currency, or CurrencyUnknown.
func ParseCurrency(s string) Currency {
	switch Currency(s) {
	case CurrencyFCFA, CurrencyEUR, CurrencyUSD:
		return Currency(s)
	}
	return CurrencyUnknown
}

//
// TemplateID
//

// TemplateID names one of the shipped site templates.  Whether an ID is
// actually renderable is decided by the theme registry, not here; the enum
// only closes the value space.
type TemplateID string

const (
	Template1       TemplateID = "template1"
	Template2       TemplateID = "template2"
	Template3       TemplateID = "template3"
	Template4       TemplateID = "template4"
	TemplateUnknown TemplateID = ""
)

// ParseTemplateID maps a raw string to a known template ID, or
// TemplateUnknown.
func ParseTemplateID(s string) TemplateID {
	switch TemplateID(s) {
	case Template1, Template2, Template3, Template4:
		return TemplateID(s)
	}
	return TemplateUnknown
}

// String returns the raw identifier.
func (t TemplateID) String() string { return string(t) }

//
// IdentityType
//

// IdentityType classifies the establishment.  Unknown values are kept
// as-is for display but normalize to TypeUnknown for filtering.
type IdentityType string

const (
	TypeGastronomique IdentityType = "gastronomique"
	TypeFastFood      IdentityType = "fast-food"
	TypeCafe          IdentityType = "café"
	TypeBar           IdentityType = "bar"
	TypeStreetFood    IdentityType = "street-food"
	TypeUnknown       IdentityType = ""
)

// ParseIdentityType maps a raw string to a known type, or TypeUnknown.
func ParseIdentityType(s string) IdentityType {
	switch IdentityType(s) {
	case TypeGastronomique, TypeFastFood, TypeCafe, TypeBar, TypeStreetFood:
		return IdentityType(s)
	}
	return TypeUnknown
}
