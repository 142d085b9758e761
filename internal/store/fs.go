// internal/store/fs.go
//
// Filesystem-backed config store.
//
// Layout: <root>/data/restaurants/<slug>.json, one file per tenant.  This
// is the canonical development layout; production typically fronts it with
// the Redis cache or swaps in the S3 store.

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FS reads configs from a directory of <slug>.json files.
type FS struct {
	Dir string // e.g. "<root>/data/restaurants"
}

// NewFS returns a filesystem store rooted at dir.
func NewFS(dir string) *FS {
	return &FS{Dir: dir}
}

// Fetch reads <dir>/<slug>.json.  Slugs containing path separators or
// parent references are rejected as not found rather than resolved.
func (s *FS) Fetch(ctx context.Context, slug string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if slug == "" || strings.ContainsAny(slug, `/\`) || strings.Contains(slug, "..") {
		return nil, ErrNotFound
	}

	b, err := os.ReadFile(filepath.Join(s.Dir, slug+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
