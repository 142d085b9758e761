// internal/routing/middleware.go
//
// Host-rewrite middleware.
//
// Workflow
// --------
//   1. main.go wires Middleware(mapper, devMode) first in the chain.
//   2. The middleware resolves (Host, Path) once per request and mutates
//     r.URL.Path on a Rewrite decision—no HTTP redirect is issued.
//   3. Everything downstream sees canonical /<slug>/... paths.

package routing

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/zerotoone/restau-engine/internal/metrics"
)

// Middleware returns an http middleware that applies ResolveWith to every
// request.
func Middleware(m HostMapper, dev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := ResolveWith(r.Context(), m, r.Host, r.URL.Path, dev)
			if d.Rewritten {
				original := r.URL.Path
				r.URL.Path = d.Path
				metrics.HostRewriteTotal.Inc()
				zap.L().Debug("host rewrite",
					zap.String("host", r.Host),
					zap.String("from", original),
					zap.String("to", d.Path))
			}
			next.ServeHTTP(w, r)
		})
	}
}
