// internal/store/store.go
//
// ConfigStore abstraction.
//
// Context
// -------
// The engine never persists restaurant configs itself; it reads raw JSON
// bytes from an external collaborator keyed by slug.  Store is that seam.
// Implementations in this package: on-disk files (fs.go, the canonical
// layout), an S3 bucket (s3.go), and a Redis read-through cache that can
// wrap either (redis.go).  Slug uniqueness is enforced by the backing key
// space, not here.
//
// Every Fetch takes a context so the surrounding request deadline bounds
// the read; a missing slug is always the sentinel ErrNotFound.

package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no config exists for a slug.
var ErrNotFound = errors.New("restaurant config not found")

// Store retrieves raw config bytes for one slug.
type Store interface {
	Fetch(ctx context.Context, slug string) ([]byte, error)
}
