// Package theme holds the data structures that describe one site template.
// A Theme combines:
//
//   - ID        – the template identifier (for example, template1).
//   - Root      – absolute path to the template directory on disk.
//   - Renderer  – parsed templates ready for execution.
//   - AssetFunc – helper injected into templates so they can resolve
//     `{{ asset "css/main.css" }}` to a URL.
//
// Themes are parsed once at boot by the Manager and collected into a
// Registry, which doubles as the template-existence check the config
// validator consults.  Rendering itself is presentation glue; the registry
// lookup is the part with an invariant.
package theme

import (
	"html/template"
	"path/filepath"

	"github.com/zerotoone/restau-engine/internal/restaurant"
)

// Theme is returned by the Manager once all templates are parsed.
type Theme struct {
	ID        restaurant.TemplateID
	Root      string
	Renderer  *template.Template
	AssetFunc func(string) string
}

// New constructs a Theme with an AssetFunc that points to the assets folder.
func New(id restaurant.TemplateID, root string, tpl *template.Template) *Theme {
	assetPrefix := filepath.ToSlash("/assets/" + id.String() + "/")
	return &Theme{
		ID:       id,
		Root:     root,
		Renderer: tpl,
		AssetFunc: func(p string) string {
			return assetPrefix + p
		},
	}
}
