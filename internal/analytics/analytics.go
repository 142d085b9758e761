// internal/analytics/analytics.go
//
// Per-tenant view and click counters.
//
// Context
// -------
// Config files carry last-published analytics snapshots; live traffic is
// counted here and mirrored to Prometheus.  Counters are in-memory and
// process-local—the external publishing pipeline reconciles them into the
// stored configs, not this engine.  Bot traffic is filtered with uasurfer
// so crawlers never inflate view counts.
//
// Safe for concurrent use; one Tracker serves all tenants.

package analytics

import (
	"sync"

	surfer "github.com/avct/uasurfer"

	"github.com/zerotoone/restau-engine/internal/metrics"
)

// Snapshot is one tenant's live counters.
type Snapshot struct {
	Views          int64
	WhatsAppClicks int64
}

// Tracker accumulates per-slug counters.
type Tracker struct {
	mu    sync.Mutex
	slugs map[string]*Snapshot
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{slugs: make(map[string]*Snapshot)}
}

func (t *Tracker) snapshot(slug string) *Snapshot {
	s, ok := t.slugs[slug]
	if !ok {
		s = &Snapshot{}
		t.slugs[slug] = s
	}
	return s
}

// View counts one page view unless the User-Agent is a known bot.
// Returns true when the view was counted.
func (t *Tracker) View(slug, userAgent string) bool {
	if surfer.Parse(userAgent).IsBot() {
		return false
	}

	t.mu.Lock()
	t.snapshot(slug).Views++
	t.mu.Unlock()

	metrics.PageViewTotal.WithLabelValues(slug).Inc()
	return true
}

// WhatsAppClick counts one outbound deep-link click.
func (t *Tracker) WhatsAppClick(slug string) {
	t.mu.Lock()
	t.snapshot(slug).WhatsAppClicks++
	t.mu.Unlock()

	metrics.WhatsAppClickTotal.WithLabelValues(slug).Inc()
}

// Get returns a copy of the live counters for slug.
func (t *Tracker) Get(slug string) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.slugs[slug]; ok {
		return *s
	}
	return Snapshot{}
}
