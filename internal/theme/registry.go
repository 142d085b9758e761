// internal/theme/registry.go
//
// Template-implementation registry.
//
// The association from template identifier to renderer is an explicit
// dispatch table built once at boot, injected wherever a lookup is needed
// (validator, page handlers).  Keeping it a value passed around—rather
// than ambient filesystem checks—keeps the config validator free of I/O
// and makes "unknown template" a reachable, testable state.

package theme

import "github.com/zerotoone/restau-engine/internal/restaurant"

// Registry maps template IDs to loaded Themes.
type Registry struct {
	themes map[restaurant.TemplateID]*Theme
}

// NewRegistry builds a registry over the given themes.
func NewRegistry(themes ...*Theme) *Registry {
	m := make(map[restaurant.TemplateID]*Theme, len(themes))
	for _, t := range themes {
		m[t.ID] = t
	}
	return &Registry{themes: m}
}

// Has reports whether id resolves to a loaded theme.  Satisfies
// restaurant.TemplateChecker.
func (r *Registry) Has(id restaurant.TemplateID) bool {
	_, ok := r.themes[id]
	return ok
}

// Get returns the theme for id, or nil when unknown.
func (r *Registry) Get(id restaurant.TemplateID) *Theme {
	return r.themes[id]
}

// IDs returns every registered template ID in arbitrary order.
func (r *Registry) IDs() []restaurant.TemplateID {
	out := make([]restaurant.TemplateID, 0, len(r.themes))
	for id := range r.themes {
		out = append(out, id)
	}
	return out
}
