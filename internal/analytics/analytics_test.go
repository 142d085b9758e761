// internal/analytics/analytics_test.go

package analytics

import (
	"sync"
	"testing"
)

const (
	browserUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
	botUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestView_CountsBrowsers(t *testing.T) {
	tr := NewTracker()
	if !tr.View("pizza-roma", browserUA) {
		t.Fatal("browser view must be counted")
	}
	if got := tr.Get("pizza-roma").Views; got != 1 {
		t.Fatalf("views = %d, want 1", got)
	}
}

func TestView_FiltersBots(t *testing.T) {
	tr := NewTracker()
	if tr.View("pizza-roma", botUA) {
		t.Fatal("bot view must not be counted")
	}
	if got := tr.Get("pizza-roma").Views; got != 0 {
		t.Fatalf("views = %d, want 0", got)
	}
}

func TestWhatsAppClick(t *testing.T) {
	tr := NewTracker()
	tr.WhatsAppClick("pizza-roma")
	tr.WhatsAppClick("pizza-roma")
	if got := tr.Get("pizza-roma").WhatsAppClicks; got != 2 {
		t.Fatalf("clicks = %d, want 2", got)
	}
}

func TestGet_UnknownSlugIsZero(t *testing.T) {
	tr := NewTracker()
	if s := tr.Get("ghost"); s.Views != 0 || s.WhatsAppClicks != 0 {
		t.Fatalf("snapshot = %+v, want zeros", s)
	}
}

func TestTracker_Concurrent(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.View("pizza-roma", browserUA)
			tr.WhatsAppClick("pizza-roma")
		}()
	}
	wg.Wait()

	s := tr.Get("pizza-roma")
	if s.Views != 50 || s.WhatsAppClicks != 50 {
		t.Fatalf("snapshot = %+v, want 50/50", s)
	}
}
