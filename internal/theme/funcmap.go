//
//  internal/theme/funcmap.go
//
//  Template functions shared by every site template.  These helpers keep
//  HTML authors from assembling WhatsApp URLs or price strings by hand,
//  so the outbound wire format stays in one place (internal/whatsapp).
//

package theme

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/zerotoone/restau-engine/internal/restaurant"
	"github.com/zerotoone/restau-engine/internal/whatsapp"
)

// FuncMap returns the global template function map.  assetFunc resolves
// relative asset paths for the active theme.
func FuncMap(assetFunc func(string) string) template.FuncMap {
	return template.FuncMap{
		"asset": assetFunc,

		// WhatsApp deep links
		"waReservation": func(cfg *restaurant.RestaurantConfig) string {
			return whatsapp.ReservationLink(cfg)
		},
		"waOrder": func(cfg *restaurant.RestaurantConfig, item restaurant.MenuItem) string {
			return whatsapp.OrderLink(cfg, item, 1)
		},

		// Display helpers.  On-page prices print without trailing zeros
		// (2500, 12.5); message totals in outbound links are two-decimal.
		"price": func(amount float64, currency restaurant.Currency) string {
			return fmt.Sprintf("%s %s", strconv.FormatFloat(amount, 'f', -1, 64), currency)
		},
		"dict": func(kv ...any) map[string]any {
			m := make(map[string]any, len(kv)/2)
			for i := 0; i+1 < len(kv); i += 2 {
				key, _ := kv[i].(string)
				m[key] = kv[i+1]
			}
			return m
		},
	}
}
