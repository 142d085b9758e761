// internal/theme/manager_test.go
//
// Loads the shipped template tree and checks registry dispatch plus the
// per-theme asset prefix.

package theme

import (
	"path/filepath"
	"testing"

	"github.com/zerotoone/restau-engine/internal/restaurant"
)

func shippedTemplates(t *testing.T) *Registry {
	t.Helper()
	mgr := &Manager{BaseDir: filepath.Join("..", "..", "templates")}
	reg, err := mgr.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return reg
}

func TestLoadAll_ShippedTemplates(t *testing.T) {
	reg := shippedTemplates(t)

	for _, id := range []restaurant.TemplateID{
		restaurant.Template1,
		restaurant.Template2,
		restaurant.Template3,
		restaurant.Template4,
	} {
		if !reg.Has(id) {
			t.Errorf("Has(%s) = false, want every shipped template registered", id)
		}
		th := reg.Get(id)
		if th == nil {
			t.Fatalf("Get(%s) = nil", id)
		}
		// The set must define the page entry points handlers execute.
		for _, page := range []string{"home.html", "menu.html", "item.html"} {
			if th.Renderer.Lookup(page) == nil {
				t.Errorf("%s: missing %s", id, page)
			}
		}
	}

	if reg.Has(restaurant.TemplateUnknown) {
		t.Error("Has(unknown) must be false")
	}
	if reg.Get(restaurant.TemplateID("template9")) != nil {
		t.Error("Get(template9) must be nil")
	}
}

func TestAssetFunc(t *testing.T) {
	reg := shippedTemplates(t)
	th := reg.Get(restaurant.Template1)

	if got, want := th.AssetFunc("css/site.css"), "/assets/template1/css/site.css"; got != want {
		t.Errorf("AssetFunc = %q, want %q", got, want)
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	mgr := &Manager{BaseDir: t.TempDir()}
	if _, err := mgr.Load(restaurant.Template1); err == nil {
		t.Fatal("Load must fail for an absent template directory")
	}
	if _, err := mgr.LoadAll(); err == nil {
		t.Fatal("LoadAll must fail when no template directory exists")
	}
}
