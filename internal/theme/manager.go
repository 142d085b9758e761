package theme

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/zerotoone/restau-engine/internal/restaurant"
)

// Manager discovers and loads site templates from disk.
type Manager struct {
	BaseDir string // e.g., "templates" (relative) or "/srv/templates"
}

// Load parses every *.html under <BaseDir>/<id> into one template set.
func (m *Manager) Load(id restaurant.TemplateID) (*Theme, error) {
	root := filepath.Join(m.BaseDir, id.String())
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("template %s not found at %s", id, root)
	}

	// Dummy asset helper so parsing succeeds before the Theme exists.
	dummyAsset := func(s string) string { return s }
	tpl := template.New("").Funcs(FuncMap(dummyAsset))

	files, err := CollectHTML(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", id, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("template %s has no html files", id)
	}
	if _, err := tpl.ParseFiles(files...); err != nil {
		return nil, fmt.Errorf("parse %s: %w", id, err)
	}

	th := New(id, root, tpl)
	tpl.Funcs(FuncMap(th.AssetFunc)) // replace dummy with real prefix

	return th, nil
}

// LoadAll loads every template directory that exists under BaseDir and
// returns the registry.  Known IDs with no directory are skipped with a
// warning—the validator will reject configs that reference them.
func (m *Manager) LoadAll() (*Registry, error) {
	ids := []restaurant.TemplateID{
		restaurant.Template1,
		restaurant.Template2,
		restaurant.Template3,
		restaurant.Template4,
	}

	var themes []*Theme
	for _, id := range ids {
		if _, err := os.Stat(filepath.Join(m.BaseDir, id.String())); err != nil {
			zap.S().Warnw("template directory absent, skipping", "template", id)
			continue
		}
		th, err := m.Load(id)
		if err != nil {
			return nil, err
		}
		themes = append(themes, th)
	}
	if len(themes) == 0 {
		return nil, fmt.Errorf("no templates found under %s", m.BaseDir)
	}
	return NewRegistry(themes...), nil
}
