// internal/restaurant/validate.go
//
// Untyped JSON tree → normalized RestaurantConfig.
//
// Context
// -------
// Stored configs are untrusted: any field may be absent, empty, or the
// wrong type.  Validate therefore never casts structurally; it walks a
// generic map tree with explicit presence and type checks, fails fast on
// the first broken invariant, then runs a total normalization pass that
// fills every documented default.  The template-existence check runs last,
// against an injected registry lookup, so this package stays free of I/O.
//
// Check order (deterministic, each short-circuits):
//
//  1. id                  – present, non-empty
//  2. slug                – present, non-empty
//  3. identity.name       – present
//  4. contact.whatsapp    – present
//  5. menu.categories     – present, at least one
//  6. appearance.template – present
//  7. category/item sweep – names present, items non-empty, prices numeric
//  8. template existence  – resolved ID known to the registry
//
// Notes
// -----
//   - The defaults below are pure constants; there is no mutable
//     module-level state.
//   - analytics.last_update is stamped with the load-time clock when the
//     source omits it; everything else is input-determined.
//   - Oxford commas, two spaces after periods.

package restaurant

import (
	"time"

	"go.uber.org/zap"
)

// TemplateChecker reports whether a template ID has a registered renderer.
// theme.Registry satisfies it; tests inject stubs.
type TemplateChecker interface {
	Has(id TemplateID) bool
}

//
// Defaults (§normalization).  Pure constants, never mutated.
//

const (
	defaultPrimaryColor   = "#3B82F6"
	defaultSecondaryColor = "#ffffff"
	defaultTypography     = "system-ui, sans-serif"
)

var (
	defaultServices       = []string{"sur place"}
	defaultPaymentMethods = []string{"cash"}
)

// Validate turns a decoded JSON value into a fully-defaulted
// RestaurantConfig, or fails with a *ValidationError.
func Validate(raw any, templates TemplateChecker) (*RestaurantConfig, error) {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, missingField("id")
	}

	//
	// Required-field checks, in documented order.
	//

	id := str(root, "id")
	if id == "" {
		return nil, missingField("id")
	}
	slug := str(root, "slug")
	if slug == "" {
		return nil, missingField("slug")
	}

	identity := sub(root, "identity")
	if str(identity, "name") == "" {
		return nil, missingField("identity.name")
	}

	contact := sub(root, "contact")
	if str(contact, "whatsapp") == "" {
		return nil, missingField("contact.whatsapp")
	}

	menu := sub(root, "menu")
	rawCats := list(menu, "categories")
	if len(rawCats) == 0 {
		return nil, invalidMenu("aucune catégorie définie")
	}

	appearance := sub(root, "appearance")
	rawTemplate := str(appearance, "template")
	if rawTemplate == "" {
		return nil, missingField("appearance.template")
	}

	//
	// Category and item sweep, source order.
	//

	cats := make([]MenuCategory, 0, len(rawCats))
	for i, rc := range rawCats {
		cm, _ := rc.(map[string]any)
		name := str(cm, "name")
		if name == "" {
			return nil, invalidCategory(i, "catégorie sans nom")
		}
		rawItems := list(cm, "items")
		if len(rawItems) == 0 {
			return nil, invalidCategory(i, "la catégorie ne contient aucun plat")
		}

		items := make([]MenuItem, 0, len(rawItems))
		for j, ri := range rawItems {
			im, _ := ri.(map[string]any)
			if str(im, "name") == "" {
				return nil, invalidItem(name, j, "plat sans nom")
			}
			price, numeric := num(im, "price")
			if !numeric {
				return nil, invalidItem(name, j, "prix invalide")
			}
			items = append(items, normalizeItem(im, price))
		}
		cats = append(cats, MenuCategory{ID: str(cm, "id"), Name: name, Items: items})
	}

	//
	// Normalization pass: total, no failures.  Field order is independent
	// except business.id, which falls back to the root id.
	//

	business := sub(root, "business")
	marketing := sub(root, "marketing")
	analytics := sub(root, "analytics")

	rawColors, colorsPresent := appearance["colors"].(map[string]any)

	cfg := &RestaurantConfig{
		ID:     id,
		Slug:   slug,
		Domain: str(root, "domain"),
		Identity: Identity{
			Name:   str(identity, "name"),
			Slogan: str(identity, "slogan"),
			Logo:   str(identity, "logo"),
			Type:   ParseIdentityType(str(identity, "type")),
		},
		Contact: Contact{
			WhatsApp:   str(contact, "whatsapp"),
			Phone:      str(contact, "phone"),
			Email:      str(contact, "email"),
			Address:    str(contact, "address"),
			GoogleMaps: str(contact, "google_maps"),
		},
		Menu: Menu{
			Currency:   currencyOrDefault(str(menu, "currency")),
			Categories: cats,
		},
		Business: Business{
			ID:             strOr(business, "id", id),
			OpeningHours:   openingHours(business),
			DeliveryFee:    numOr(business, "delivery_fee", 0),
			Services:       strsOr(business, "services", defaultServices),
			Capacity:       int(numOr(business, "capacity", 0)),
			PaymentMethods: strsOr(business, "payment_methods", defaultPaymentMethods),
		},
		Appearance: Appearance{
			Template: ParseTemplateID(rawTemplate),
			Colors: Colors{
				Primary:   strOr(rawColors, "primary", defaultPrimaryColor),
				Secondary: strOr(rawColors, "secondary", defaultSecondaryColor),
			},
			ShowImages:         boolOr(appearance, "show_images", true),
			Typography:         strOr(appearance, "typography", defaultTypography),
			DarkMode:           boolOr(appearance, "dark_mode", false),
			HeroBackground:     media(appearance, "hero_background"),
			MenuHeroBackground: media(appearance, "menu_hero_background"),
		},
		Marketing: Marketing{
			Newsletter:   boolOr(marketing, "newsletter", false),
			SocialLinks:  socialLinks(marketing),
			Testimonials: testimonials(marketing),
			Promotions:   promotions(marketing),
			SEOKeywords:  strsOr(marketing, "seo_keywords", []string{}),
		},
		Analytics: Analytics{
			Views:          int64(numOr(analytics, "views", 0)),
			WhatsAppClicks: int64(numOr(analytics, "whatsapp_clicks", 0)),
			ConversionRate: numOr(analytics, "conversion_rate", 0),
			LastUpdate:     strOr(analytics, "last_update", time.Now().UTC().Format(time.RFC3339)),
		},
		Pages: pages(root),
	}

	// Diagnostic only: a fully-defaulted palette is worth surfacing to
	// operators, but it never fails the load.
	if !colorsPresent {
		zap.S().Warnw("appearance.colors absent, fallbacks appliqués", "slug", slug)
	}

	//
	// Template existence, checked against the defaulted value.
	//

	if cfg.Appearance.Template == TemplateUnknown || !templates.Has(cfg.Appearance.Template) {
		return nil, unknownTemplate(rawTemplate)
	}

	return cfg, nil
}

//
// item and sub-object normalization
//

// normalizeItem copies every optional item field, defaulting available to
// true when absent.  The source map is never mutated.
func normalizeItem(im map[string]any, price float64) MenuItem {
	item := MenuItem{
		ID:               str(im, "id"),
		Name:             str(im, "name"),
		Price:            price,
		Available:        boolOr(im, "available", true),
		ShortDescription: str(im, "shortDescription"),
		FullDescription:  str(im, "fullDescription"),
		Image:            str(im, "image"),
		Ingredients:      strs(im, "ingredients"),
		Allergens:        strs(im, "allergens"),
		Accompaniments:   strs(im, "accompaniments"),
		PreparationTime:  str(im, "preparationTime"),
	}
	if cal, ok := num(im, "calories"); ok {
		item.Calories = cal
	}
	if ni, ok := im["nutritionalInfo"].(map[string]any); ok {
		item.NutritionalInfo = &NutritionalInfo{
			Proteins: numOr(ni, "proteins", 0),
			Carbs:    numOr(ni, "carbs", 0),
			Fats:     numOr(ni, "fats", 0),
		}
	}
	for _, rv := range list(im, "variants") {
		vm, ok := rv.(map[string]any)
		if !ok {
			continue
		}
		diff, _ := num(vm, "priceDiff")
		item.Variants = append(item.Variants, Variant{Name: str(vm, "name"), PriceDiff: diff})
	}
	return item
}

func currencyOrDefault(s string) Currency {
	if c := ParseCurrency(s); c != CurrencyUnknown {
		return c
	}
	return DefaultCurrency
}

func openingHours(business map[string]any) []OpeningHour {
	raw := list(business, "opening_hours")
	hours := make([]OpeningHour, 0, len(raw))
	for _, rh := range raw {
		hm, ok := rh.(map[string]any)
		if !ok {
			continue
		}
		hours = append(hours, OpeningHour{
			Day:   str(hm, "day"),
			Open:  str(hm, "open"),
			Close: str(hm, "close"),
		})
	}
	return hours
}

func media(m map[string]any, key string) *BackgroundMedia {
	bm, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}
	return &BackgroundMedia{
		Type:     strOr(bm, "type", "image"),
		URL:      str(bm, "url"),
		Alt:      str(bm, "alt"),
		Poster:   str(bm, "poster"),
		Autoplay: boolOr(bm, "autoplay", true),
		Muted:    boolOr(bm, "muted", true),
		Loop:     boolOr(bm, "loop", true),
	}
}

func socialLinks(marketing map[string]any) SocialLinks {
	links := SocialLinks{}
	if sm, ok := marketing["social_links"].(map[string]any); ok {
		for k, v := range sm {
			if s, ok := v.(string); ok {
				links[k] = s
			}
		}
	}
	return links
}

func testimonials(marketing map[string]any) []Testimonial {
	raw := list(marketing, "testimonials")
	out := make([]Testimonial, 0, len(raw))
	for _, rt := range raw {
		tm, ok := rt.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Testimonial{Author: str(tm, "author"), Text: str(tm, "text")})
	}
	return out
}

func promotions(marketing map[string]any) []Promotion {
	raw := list(marketing, "promotions")
	out := make([]Promotion, 0, len(raw))
	for _, rp := range raw {
		pm, ok := rp.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Promotion{Title: str(pm, "title"), Description: str(pm, "description")})
	}
	return out
}

func pages(root map[string]any) map[string]PageContent {
	out := map[string]PageContent{}
	pm, ok := root["pages"].(map[string]any)
	if !ok {
		return out
	}
	for name, rv := range pm {
		cv, ok := rv.(map[string]any)
		if !ok {
			continue
		}
		out[name] = PageContent{
			Title:    str(cv, "title"),
			Subtitle: str(cv, "subtitle"),
			Text:     str(cv, "text"),
			Images:   strs(cv, "images"),
			Videos:   strs(cv, "videos"),
		}
	}
	return out
}

//
// generic tree accessors
//

// sub returns a child object, or an empty map when absent or mistyped, so
// callers can chain lookups without nil checks.
func sub(m map[string]any, key string) map[string]any {
	if child, ok := m[key].(map[string]any); ok {
		return child
	}
	return map[string]any{}
}

func list(m map[string]any, key string) []any {
	if l, ok := m[key].([]any); ok {
		return l
	}
	return nil
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func strOr(m map[string]any, key, fallback string) string {
	if s := str(m, key); s != "" {
		return s
	}
	return fallback
}

func strs(m map[string]any, key string) []string {
	raw := list(m, key)
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func strsOr(m map[string]any, key string, fallback []string) []string {
	if _, present := m[key]; !present {
		out := make([]string, len(fallback))
		copy(out, fallback)
		return out
	}
	if out := strs(m, key); out != nil {
		return out
	}
	out := make([]string, len(fallback))
	copy(out, fallback)
	return out
}

// num reads a numeric value.  encoding/json decodes every JSON number as
// float64; integer types are accepted for callers that build trees by hand.
func num(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func numOr(m map[string]any, key string, fallback float64) float64 {
	if f, ok := num(m, key); ok {
		return f
	}
	return fallback
}

func boolOr(m map[string]any, key string, fallback bool) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return fallback
}
