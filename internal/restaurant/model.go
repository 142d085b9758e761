// internal/restaurant/model.go
//
// Typed restaurant configuration model.
//
// Context
// -------
// One RestaurantConfig describes everything a tenant site needs: identity,
// contact, menu, business facts, appearance, marketing content, analytics
// counters, and free-form page content.  The struct is built exclusively by
// Validate (validate.go) from an untyped JSON tree, so every field here is
// guaranteed concrete after load—no downstream consumer ever sees a missing
// default.
//
// Notes
// -----
//   - JSON tags mirror the on-disk config format exactly; the format must
//     round-trip parse → validate → normalize without losing required
//     fields.
//   - Enum-like strings (currency, template, identity type) are closed
//     types with an explicit unknown value; see enums.go.
//   - Oxford commas, two spaces after periods.

package restaurant

//
// Identity and contact
//

// Identity is the restaurant's public face.
type Identity struct {
	Name   string       `json:"name"`
	Slogan string       `json:"slogan,omitempty"`
	Logo   string       `json:"logo,omitempty"`
	Type   IdentityType `json:"type,omitempty"`
}

// Contact holds every customer-facing coordinate.  WhatsApp is the primary
// ordering channel and therefore required; the rest are optional.
type Contact struct {
	WhatsApp   string `json:"whatsapp"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
	GoogleMaps string `json:"google_maps,omitempty"`
}

//
// Menu
//

// Menu is the ordered card: one currency, one or more categories.
type Menu struct {
	Currency   Currency       `json:"currency"`
	Categories []MenuCategory `json:"categories"`
}

// MenuCategory groups items ("Entrées", "Plats", "Boissons").  Source order
// is display order.
type MenuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// NutritionalInfo is optional per-item macro data, in grams.
type NutritionalInfo struct {
	Proteins float64 `json:"proteins,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fats     float64 `json:"fats,omitempty"`
}

// Variant is a size or option that shifts the base price ("XL", +500).
type Variant struct {
	Name      string  `json:"name"`
	PriceDiff float64 `json:"priceDiff"`
}

// MenuItem is one dish or drink.  Price is always numeric—a formatted
// string such as "12.50" is rejected at validation time.
type MenuItem struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Price            float64          `json:"price"`
	Available        bool             `json:"available"`
	ShortDescription string           `json:"shortDescription,omitempty"`
	FullDescription  string           `json:"fullDescription,omitempty"`
	Image            string           `json:"image,omitempty"`
	Ingredients      []string         `json:"ingredients,omitempty"`
	Allergens        []string         `json:"allergens,omitempty"`
	Accompaniments   []string         `json:"accompaniments,omitempty"`
	PreparationTime  string           `json:"preparationTime,omitempty"`
	Calories         float64          `json:"calories,omitempty"`
	NutritionalInfo  *NutritionalInfo `json:"nutritionalInfo,omitempty"`
	Variants         []Variant        `json:"variants,omitempty"`
}

//
// Business
//

// OpeningHour is one day's schedule, times in "HH:MM".
type OpeningHour struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Business captures operational facts.  ID defaults to the config ID when
// the source omits it.
type Business struct {
	ID             string        `json:"id"`
	OpeningHours   []OpeningHour `json:"opening_hours"`
	DeliveryFee    float64       `json:"delivery_fee"`
	Services       []string      `json:"services"`
	Capacity       int           `json:"capacity"`
	PaymentMethods []string      `json:"payment_methods"`
}

//
// Appearance
//

// Colors is the two-tone palette every template consumes.
type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// BackgroundMedia is a hero background, either a static image or a muted
// looping video with a poster fallback.
type BackgroundMedia struct {
	Type     string `json:"type"` // "image" or "video"
	URL      string `json:"url"`
	Alt      string `json:"alt,omitempty"`
	Poster   string `json:"poster,omitempty"`
	Autoplay bool   `json:"autoplay"`
	Muted    bool   `json:"muted"`
	Loop     bool   `json:"loop"`
}

// Appearance selects the template and its visual knobs.  Template must name
// a registered implementation or the whole load fails.
type Appearance struct {
	Template           TemplateID       `json:"template"`
	Colors             Colors           `json:"colors"`
	ShowImages         bool             `json:"show_images"`
	Typography         string           `json:"typography"`
	DarkMode           bool             `json:"dark_mode"`
	HeroBackground     *BackgroundMedia `json:"hero_background,omitempty"`
	MenuHeroBackground *BackgroundMedia `json:"menu_hero_background,omitempty"`
}

//
// Marketing
//

// SocialLinks maps network name to profile URL ("facebook", "instagram",
// "tiktok", …).
type SocialLinks map[string]string

// Testimonial is a customer quote.
type Testimonial struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// Promotion is a running offer surfaced on the home page.
type Promotion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Marketing groups every promotional surface.
type Marketing struct {
	Newsletter   bool          `json:"newsletter"`
	SocialLinks  SocialLinks   `json:"social_links"`
	Testimonials []Testimonial `json:"testimonials"`
	Promotions   []Promotion   `json:"promotions"`
	SEOKeywords  []string      `json:"seo_keywords"`
}

//
// Analytics and pages
//

// Analytics carries the counters mirrored by internal/analytics.
// LastUpdate is stamped at load time when the source omits it.
type Analytics struct {
	Views          int64   `json:"views"`
	WhatsAppClicks int64   `json:"whatsapp_clicks"`
	ConversionRate float64 `json:"conversion_rate"`
	LastUpdate     string  `json:"last_update"`
}

// PageContent is free-form editorial content for one named page.
type PageContent struct {
	Title    string   `json:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty"`
	Text     string   `json:"text,omitempty"`
	Images   []string `json:"images,omitempty"`
	Videos   []string `json:"videos,omitempty"`
}

//
// Root aggregate
//

// RestaurantConfig is the immutable per-tenant aggregate produced by
// Validate.  It is constructed fresh on every load and discarded at the end
// of the request; nothing mutates it after construction.
type RestaurantConfig struct {
	ID         string                 `json:"id"`
	Slug       string                 `json:"slug"`
	Domain     string                 `json:"domain,omitempty"`
	Identity   Identity               `json:"identity"`
	Contact    Contact                `json:"contact"`
	Menu       Menu                   `json:"menu"`
	Business   Business               `json:"business"`
	Appearance Appearance             `json:"appearance"`
	Marketing  Marketing              `json:"marketing"`
	Analytics  Analytics              `json:"analytics"`
	Pages      map[string]PageContent `json:"pages"`
}
