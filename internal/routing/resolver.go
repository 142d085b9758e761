// internal/routing/resolver.go
//
// Host-to-tenant path resolution.
//
// Context
// -------
// Inbound requests carry the tenant in the hostname (pizza-roma.example.com
// or the apex pizza-roma.bj); internally every page route is /<slug>/...
// The resolver decides, once per request and statelessly, whether to
// rewrite the path with the slug prefix.  Machine traffic (/api/...) and
// the engine asset path are never rewritten, and an already-prefixed path
// resolves to pass-through, so resolution is idempotent.
//
// Slug derivation sits behind the HostMapper seam (mapper.go): today a
// first-label heuristic, optionally a domain→slug lookup table.  The
// rewrite and exclusion logic below never changes with the mapper.

package routing

import (
	"context"
	"net"
	"strings"
)

const (
	// APIPrefix guards machine-to-machine traffic from tenant-path
	// mutation.
	APIPrefix = "/api"

	// AssetPath is the engine-internal static prefix.  Matched exactly,
	// mirroring the original matcher; deeper asset paths are served
	// before the rewrite runs.
	AssetPath = "/assets"
)

// Decision is the outcome of one resolution: either pass the path through
// unchanged or rewrite it to Path.
type Decision struct {
	Rewritten bool
	Path      string
}

// PassThrough leaves the original path untouched.
func PassThrough() Decision { return Decision{} }

// Rewrite carries the slug-prefixed path.
func Rewrite(path string) Decision { return Decision{Rewritten: true, Path: path} }

// Resolve maps (hostname, path) to a Decision using the first-label
// heuristic.  dev true preserves explicit /slug/... paths during local
// development, as does any hostname containing "localhost".
func Resolve(host, path string, dev bool) Decision {
	return ResolveWith(context.Background(), Heuristic{}, host, path, dev)
}

// ResolveWith is Resolve with a pluggable slug derivation.
func ResolveWith(ctx context.Context, m HostMapper, host, path string, dev bool) Decision {
	if dev || strings.Contains(host, "localhost") {
		return PassThrough()
	}

	slug, ok := m.Slug(ctx, host)
	if !ok {
		return PassThrough()
	}

	if strings.HasPrefix(path, "/"+slug) {
		return PassThrough() // already prefixed; never double-prefix
	}
	if path == AssetPath || strings.HasPrefix(path, APIPrefix) {
		return PassThrough()
	}

	if path == "/" {
		return Rewrite("/" + slug)
	}
	return Rewrite("/" + slug + path)
}

// stripPort removes any ":port" suffix from a Host header, unwrapping
// bracketed IPv6 literals.
func stripPort(h string) string {
	if host, _, err := net.SplitHostPort(h); err == nil {
		return host
	}
	return h
}
