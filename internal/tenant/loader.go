// internal/tenant/loader.go
//
// Config loader: slug → normalized RestaurantConfig.
//
// Context
// -------
// Load turns a slug into a fully-defaulted config.  Steps:
//
//  1. Fetch raw bytes from the Store.
//  2. Parse JSON into a generic tree.
//  3. Validate and normalize (internal/restaurant).
//
// There is no cross-request cache: every load re-reads the store, and each
// call produces a freshly constructed object, so concurrent loads for
// distinct slugs need no coordination.  A singleflight group collapses
// concurrent duplicate loads of the same slug; within one request the
// per-request Context (context.go) guarantees a single load per slug.
//
// Notes
// -----
//   - No retry anywhere: a missing or invalid config is terminal for the
//     request and surfaces as the "restaurant non trouvé" fallback.
//   - Oxford commas, two spaces after periods.

package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/zerotoone/restau-engine/internal/metrics"
	"github.com/zerotoone/restau-engine/internal/restaurant"
	"github.com/zerotoone/restau-engine/internal/store"
)

// Loader composes a Store with the validator and template registry.
type Loader struct {
	store     store.Store
	templates restaurant.TemplateChecker
	timeout   time.Duration
	sfg       singleflight.Group
}

// NewLoader wires the collaborators.  timeout bounds the store read per
// load; zero means the caller's context alone decides.
func NewLoader(s store.Store, templates restaurant.TemplateChecker, timeout time.Duration) *Loader {
	return &Loader{store: s, templates: templates, timeout: timeout}
}

// Load fetches, parses, validates, and normalizes the config for slug.
// Failure modes: ErrNotFound, *ParseError, *restaurant.ValidationError.
func (l *Loader) Load(ctx context.Context, slug string) (*restaurant.RestaurantConfig, error) {
	v, err, _ := l.sfg.Do(slug, func() (any, error) {
		return l.load(ctx, slug)
	})
	if err != nil {
		return nil, err
	}
	return v.(*restaurant.RestaurantConfig), nil
}

func (l *Loader) load(ctx context.Context, slug string) (*restaurant.RestaurantConfig, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	raw, err := l.store.Fetch(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.ConfigLoadErrorsTotal.WithLabelValues("not_found").Inc()
			return nil, fmt.Errorf("restaurant %q: %w", slug, ErrNotFound)
		}
		// Deadline or I/O failure: fail closed, the caller renders the
		// not-found experience either way.
		metrics.ConfigLoadErrorsTotal.WithLabelValues("not_found").Inc()
		zap.S().Errorw("config fetch failed", "slug", slug, "err", err)
		return nil, fmt.Errorf("restaurant %q: %w", slug, ErrNotFound)
	}

	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		metrics.ConfigLoadErrorsTotal.WithLabelValues("parse").Inc()
		return nil, &ParseError{Slug: slug, Detail: err.Error()}
	}

	cfg, err := restaurant.Validate(tree, l.templates)
	if err != nil {
		metrics.ConfigLoadErrorsTotal.WithLabelValues("validation").Inc()
		zap.S().Warnw("config validation failed", "slug", slug, "err", err)
		return nil, err
	}

	metrics.ConfigLoadTotal.Inc()
	return cfg, nil
}
