// internal/whatsapp/link.go
//
// Outbound WhatsApp deep links.
//
// Context
// -------
// Every contact and ordering action on a tenant site resolves to a wa.me
// deep link.  The wire format is fixed and must not drift:
//
//	https://wa.me/<digits>?text=<encoded message>
//
// where <digits> is the tenant's WhatsApp number with every non-digit
// stripped, and the message is percent-encoded with JavaScript's
// encodeURIComponent alphabet (space → %20, comma → %2C, but "!()*'~"
// stay raw).  Go's url.QueryEscape and url.PathEscape both disagree with
// that alphabet, so the encoder is spelled out here.  Message copy is the
// product's French wording; templates call the builders below instead of
// assembling URLs by hand.

package whatsapp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zerotoone/restau-engine/internal/restaurant"
)

const host = "https://wa.me/"

const upperhex = "0123456789ABCDEF"

// Digits strips every non-digit rune from a phone-like string.
func Digits(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EncodeText percent-encodes a message with the encodeURIComponent
// unreserved set: A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func EncodeText(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '!' || c == '~' ||
			c == '*' || c == '\'' || c == '(' || c == ')':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}
	return b.String()
}

// Link builds the canonical deep link for an arbitrary pre-filled message.
func Link(number, message string) string {
	return host + Digits(number) + "?text=" + EncodeText(message)
}

// ReservationLink pre-fills a table reservation message for the restaurant.
func ReservationLink(cfg *restaurant.RestaurantConfig) string {
	msg := fmt.Sprintf("Bonjour, je souhaite réserver une table chez %s", cfg.Identity.Name)
	return Link(cfg.Contact.WhatsApp, msg)
}

// OrderLink pre-fills an order message for qty × item.
func OrderLink(cfg *restaurant.RestaurantConfig, item restaurant.MenuItem, qty int) string {
	if qty < 1 {
		qty = 1
	}
	// Message totals always carry two decimals (5000.00, 12.50).
	total := strconv.FormatFloat(item.Price*float64(qty), 'f', 2, 64)
	msg := fmt.Sprintf("Bonjour ! Je souhaite commander %d × %s (%s %s) chez %s",
		qty, item.Name, total, cfg.Menu.Currency, cfg.Identity.Name)
	return Link(cfg.Contact.WhatsApp, msg)
}
