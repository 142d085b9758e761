// internal/server/timeouts.go
//
// HTTP server helper with robust timeouts.
//
// The WriteTimeout doubles as the request-level budget the config loader
// inherits: a store read that outlives it is cut off and the request fails
// closed to the not-found page.
//

package server

import (
	"net/http"
	"time"
)

// New constructs an *http.Server with production defaults: slow-loris
// header reads aborted at 10 s, total response time capped at 15 s, idle
// keep-alives closed after 60 s.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
