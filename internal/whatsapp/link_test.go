// internal/whatsapp/link_test.go
//
// The wa.me wire format is an external contract; these tests pin the exact
// URLs byte for byte, including the encodeURIComponent alphabet that Go's
// url helpers do not reproduce.

package whatsapp

import (
	"strings"
	"testing"

	"github.com/zerotoone/restau-engine/internal/restaurant"
)

func TestDigits(t *testing.T) {
	cases := []struct{ in, want string }{
		{"+229 97 11 22 33", "22997112233"},
		{"(+33) 6-12-34-56-78", "33612345678"},
		{"22997112233", "22997112233"},
		{"no digits here", ""},
	}
	for _, tc := range cases {
		if got := Digits(tc.in); got != tc.want {
			t.Errorf("Digits(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEncodeText(t *testing.T) {
	cases := []struct{ in, want string }{
		// encodeURIComponent leaves ! ( ) * ' ~ - _ . raw.
		{"a b", "a%20b"},
		{"Bonjour !", "Bonjour%20!"},
		{"(2500 FCFA)", "(2500%20FCFA)"},
		{"a,b", "a%2Cb"},
		{"café", "caf%C3%A9"},
		{"2 × riz", "2%20%C3%97%20riz"},
		{"-_.!~*'()", "-_.!~*'()"},
		{"a+b=c&d", "a%2Bb%3Dc%26d"},
		{"a/b?c#d", "a%2Fb%3Fc%23d"},
	}
	for _, tc := range cases {
		if got := EncodeText(tc.in); got != tc.want {
			t.Errorf("EncodeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func sampleConfig() *restaurant.RestaurantConfig {
	return &restaurant.RestaurantConfig{
		Identity: restaurant.Identity{Name: "Pizza Roma"},
		Contact:  restaurant.Contact{WhatsApp: "+229 97 11 22 33"},
		Menu:     restaurant.Menu{Currency: restaurant.CurrencyFCFA},
	}
}

func TestLink(t *testing.T) {
	got := Link("+229 97 11 22 33", "Bonjour, merci !")
	want := "https://wa.me/22997112233?text=Bonjour%2C%20merci%20!"
	if got != want {
		t.Fatalf("Link = %q, want %q", got, want)
	}
}

func TestReservationLink(t *testing.T) {
	got := ReservationLink(sampleConfig())
	want := "https://wa.me/22997112233?text=" +
		"Bonjour%2C%20je%20souhaite%20r%C3%A9server%20une%20table%20chez%20Pizza%20Roma"
	if got != want {
		t.Fatalf("ReservationLink = %q, want %q", got, want)
	}
}

func TestOrderLink(t *testing.T) {
	item := restaurant.MenuItem{Name: "Margherita", Price: 2500}

	got := OrderLink(sampleConfig(), item, 2)
	want := "https://wa.me/22997112233?text=" +
		"Bonjour%20!%20Je%20souhaite%20commander%202%20%C3%97%20Margherita%20" +
		"(5000.00%20FCFA)%20chez%20Pizza%20Roma"
	if got != want {
		t.Fatalf("OrderLink = %q, want %q", got, want)
	}
}

// Totals always carry two decimals, even for round amounts.
func TestOrderLink_TotalAlwaysTwoDecimals(t *testing.T) {
	item := restaurant.MenuItem{Name: "Margherita", Price: 2500}
	got := OrderLink(sampleConfig(), item, 1)
	if want := "(2500.00%20FCFA)"; !strings.Contains(got, want) {
		t.Fatalf("OrderLink = %q, want total %q", got, want)
	}
}

func TestOrderLink_FractionalTotalAndQtyFloor(t *testing.T) {
	cfg := sampleConfig()
	cfg.Menu.Currency = restaurant.CurrencyEUR
	item := restaurant.MenuItem{Name: "Salade", Price: 12.5}

	// qty below 1 is clamped to a single unit.
	got := OrderLink(cfg, item, 0)
	want := "https://wa.me/22997112233?text=" +
		"Bonjour%20!%20Je%20souhaite%20commander%201%20%C3%97%20Salade%20" +
		"(12.50%20EUR)%20chez%20Pizza%20Roma"
	if got != want {
		t.Fatalf("OrderLink = %q, want %q", got, want)
	}
}
