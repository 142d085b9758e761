// internal/web/handlers.go
//
// Page and API handlers.
//
// Each page handler follows the same shape: load the config once through
// the per-request tenant.Context, seed the head builder from identity and
// marketing, count the view, and execute the tenant's template.  Templates
// only ever see the normalized config—raw JSON never crosses this
// boundary.

package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zerotoone/restau-engine/internal/restaurant"
	"github.com/zerotoone/restau-engine/internal/tenant"
	"github.com/zerotoone/restau-engine/internal/whatsapp"
)

//
// page handlers
//

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "home.html")
}

func (s *Server) menu(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "menu.html")
}

// renderPage is the shared flow for full-page renders.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, page string) {
	slug := chi.URLParam(r, "slug")

	ctx := s.Loader.NewContext(r)
	cfg, err := ctx.Config(r.Context(), slug)
	if err != nil {
		s.renderNotFound(w, slug, err)
		return
	}

	ctx.Head.SetTitle(cfg.Identity.Name)
	ctx.Head.Meta(`<meta charset="utf-8">`)
	ctx.Head.Keywords(cfg.Marketing.SEOKeywords)
	if cfg.Identity.Logo != "" {
		ctx.Head.Link(`<link rel="icon" href="` + template.HTMLEscapeString(cfg.Identity.Logo) + `">`)
	}

	s.Tracker.View(slug, r.UserAgent())

	th := s.Templates.Get(cfg.Appearance.Template)
	data := map[string]any{
		"Config": cfg,
		"Head":   ctx.Head,
	}
	if err := th.Renderer.ExecuteTemplate(w, page, data); err != nil {
		zap.S().Errorw("render failed", "slug", slug, "page", page, "err", err)
		http.Error(w, "erreur de rendu", http.StatusInternalServerError)
	}
}

func (s *Server) menuItem(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	itemID := chi.URLParam(r, "itemID")

	ctx := s.Loader.NewContext(r)
	cfg, err := ctx.Config(r.Context(), slug)
	if err != nil {
		s.renderNotFound(w, slug, err)
		return
	}

	item, ok := findItem(cfg, itemID)
	if !ok {
		s.renderNotFound(w, slug, tenant.ErrNotFound)
		return
	}

	ctx.Head.SetTitle(item.Name + " – " + cfg.Identity.Name)
	ctx.Head.Meta(`<meta charset="utf-8">`)

	s.Tracker.View(slug, r.UserAgent())

	th := s.Templates.Get(cfg.Appearance.Template)
	data := map[string]any{
		"Config": cfg,
		"Head":   ctx.Head,
		"Item":   item,
	}
	if err := th.Renderer.ExecuteTemplate(w, "item.html", data); err != nil {
		zap.S().Errorw("render failed", "slug", slug, "page", "item.html", "err", err)
		http.Error(w, "erreur de rendu", http.StatusInternalServerError)
	}
}

//
// WhatsApp click-through redirects
//

// waReservation counts the click and redirects to the wa.me deep link.
func (s *Server) waReservation(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	cfg, err := s.Loader.NewContext(r).Config(r.Context(), slug)
	if err != nil {
		s.renderNotFound(w, slug, err)
		return
	}

	s.Tracker.WhatsAppClick(slug)
	http.Redirect(w, r, whatsapp.ReservationLink(cfg), http.StatusFound)
}

func (s *Server) waOrder(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	itemID := chi.URLParam(r, "itemID")

	cfg, err := s.Loader.NewContext(r).Config(r.Context(), slug)
	if err != nil {
		s.renderNotFound(w, slug, err)
		return
	}
	item, ok := findItem(cfg, itemID)
	if !ok {
		s.renderNotFound(w, slug, tenant.ErrNotFound)
		return
	}

	qty, _ := strconv.Atoi(r.URL.Query().Get("qty"))
	s.Tracker.WhatsAppClick(slug)
	http.Redirect(w, r, whatsapp.OrderLink(cfg, item, qty), http.StatusFound)
}

//
// JSON API
//

// apiConfig returns the normalized config for machine consumers.
func (s *Server) apiConfig(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	cfg, err := s.Loader.NewContext(r).Config(r.Context(), slug)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "restaurant non trouvé",
			"slug":  slug,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cfg)
}

//
// fallback
//

// notFoundTmpl is self-contained: the fallback must render even when the
// failure is the tenant's own template configuration.
var notFoundTmpl = template.Must(template.New("fallback").Parse(`<!doctype html>
<html lang="fr"><head><meta charset="utf-8"><title>Restaurant non trouvé</title></head>
<body>
<h1>Restaurant non trouvé</h1>
{{if .Slug}}<p>Aucun restaurant pour « {{.Slug}} ».</p>{{end}}
{{if .Detail}}<p><small>{{.Detail}}</small></p>{{end}}
</body></html>
`))

// renderNotFound is the universal safety net: every load failure lands
// here with the slug echoed back and the diagnostic surfaced for
// operators.
func (s *Server) renderNotFound(w http.ResponseWriter, slug string, err error) {
	detail := ""
	if err != nil && !errors.Is(err, tenant.ErrNotFound) {
		detail = err.Error()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_ = notFoundTmpl.Execute(w, map[string]string{"Slug": slug, "Detail": detail})
}

//
// helpers
//

// findItem scans categories in order for an item ID.
func findItem(cfg *restaurant.RestaurantConfig, id string) (restaurant.MenuItem, bool) {
	for _, cat := range cfg.Menu.Categories {
		for _, item := range cat.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return restaurant.MenuItem{}, false
}
