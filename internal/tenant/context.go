// context.go defines the per-request Context passed into page handlers.
// It memoizes loads so several components needing the same config within
// one request trigger exactly one store read, and it owns the head.Builder
// so handlers can push tags into the eventual <head> section.
package tenant

import (
	"context"
	"net/http"
	"sync"

	"github.com/zerotoone/restau-engine/internal/head"
	"github.com/zerotoone/restau-engine/internal/restaurant"
)

// Context is created once per request and discarded with it.
type Context struct {
	Request *http.Request
	Head    *head.Builder

	loader *Loader

	mu      sync.Mutex
	configs map[string]result
}

type result struct {
	cfg *restaurant.RestaurantConfig
	err error
}

// NewContext initialises a Context bound to the loader.
func (l *Loader) NewContext(r *http.Request) *Context {
	return &Context{
		Request: r,
		Head:    head.New(),
		loader:  l,
		configs: make(map[string]result, 1),
	}
}

// Config returns the loaded config for slug, loading it on first use.
// Subsequent calls within the same request return the memoized outcome,
// error included.
func (c *Context) Config(ctx context.Context, slug string) (*restaurant.RestaurantConfig, error) {
	c.mu.Lock()
	if r, ok := c.configs[slug]; ok {
		c.mu.Unlock()
		return r.cfg, r.err
	}
	c.mu.Unlock()

	cfg, err := c.loader.Load(ctx, slug)

	c.mu.Lock()
	c.configs[slug] = result{cfg: cfg, err: err}
	c.mu.Unlock()
	return cfg, err
}
