// internal/requestinfo/middleware.go
//
// Enrich assigns each request a uuid, parses the user agent, stamps the
// arrival time, stores the bundle in the request context, and logs one
// access line when the handler returns.  It runs after the host-rewrite
// middleware so the logged path is the canonical /<slug>/... form.

package requestinfo

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Enrich is the standard chi middleware wrapper.
func Enrich(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := &RequestInfo{
			ID:        uuid.NewString(),
			RemoteIP:  remoteIP(r),
			UA:        parseUA(r.UserAgent()),
			Timestamp: time.Now(),
		}

		w.Header().Set("X-Request-Id", info.ID)
		ctx := context.WithValue(r.Context(), ctxKey{}, info)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		zap.L().Info("request",
			zap.String("id", info.ID),
			zap.String("host", r.Host),
			zap.String("path", r.URL.Path),
			zap.String("browser", info.UA.Browser),
			zap.Bool("bot", info.UA.IsBot),
			zap.Duration("took", time.Since(start)))
	})
}
