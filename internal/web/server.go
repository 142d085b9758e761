// internal/web/server.go
//
// HTTP surface of the engine.
//
// Request life-cycle
// ------------------
//
//  1. Host-rewrite middleware derives the tenant slug from the hostname
//     and prefixes the path (routing.Middleware).  /api and the asset
//     path are never touched.
//
//  2. Request-info enrichment assigns a uuid and parses the UA.
//
//  3. chi dispatches canonical paths: /{slug}, /{slug}/menu,
//     /{slug}/menu/{itemID}, the WhatsApp click-through redirects, and
//     the JSON API under /api.
//
//  4. Handlers load the config once per request (tenant.Context memo),
//     push head tags, and render through the template registry.  Every
//     load failure renders the "restaurant non trouvé" fallback—no error
//     propagates to the end user unhandled.

package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zerotoone/restau-engine/internal/analytics"
	"github.com/zerotoone/restau-engine/internal/requestinfo"
	"github.com/zerotoone/restau-engine/internal/routing"
	"github.com/zerotoone/restau-engine/internal/tenant"
	"github.com/zerotoone/restau-engine/internal/theme"
)

// Server bundles everything the handlers need.
type Server struct {
	Loader    *tenant.Loader
	Templates *theme.Registry
	Mapper    routing.HostMapper
	Tracker   *analytics.Tracker
	AssetsDir string // on-disk root served under /assets
	DevMode   bool
}

// Router assembles the middleware chain and route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// Host rewrite must run before request-info enrichment so access
	// logs show canonical paths.
	r.Use(routing.Middleware(s.Mapper, s.DevMode))
	r.Use(requestinfo.Enrich)

	if s.AssetsDir != "" {
		fs := http.StripPrefix(routing.AssetPath+"/", http.FileServer(http.Dir(s.AssetsDir)))
		r.Handle(routing.AssetPath+"/*", fs)
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/restaurants/{slug}", s.apiConfig)
	})

	r.Route("/{slug}", func(site chi.Router) {
		site.Get("/", s.home)
		site.Get("/menu", s.menu)
		site.Get("/menu/{itemID}", s.menuItem)
		site.Get("/wa/reservation", s.waReservation)
		site.Get("/wa/order/{itemID}", s.waOrder)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		s.renderNotFound(w, "", tenant.ErrNotFound)
	})

	return r
}
