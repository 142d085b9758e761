// internal/routing/mapper.go
//
// Slug derivation seam.
//
// Context
// -------
// The resolver needs a tenant slug for a hostname.  The shipping rule is a
// heuristic: take the first DNS label for both subdomain form
// (tenant.example.com) and apex form (tenant.bj).  The apex branch is a
// placeholder—custom apex domains rarely encode the slug—so SQLMapper
// consults a domain→slug table first and only then falls back to the
// heuristic.  Both sit behind HostMapper so swapping them never touches
// the rewrite logic.

package routing

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// HostMapper derives a tenant slug from a hostname.  ok is false when the
// hostname yields no candidate.
type HostMapper interface {
	Slug(ctx context.Context, host string) (slug string, ok bool)
}

//
// Heuristic: first DNS label
//

// Heuristic derives the slug from the hostname's first label.
type Heuristic struct{}

// Slug returns the first label for hostnames of two or more labels.
func (Heuristic) Slug(_ context.Context, host string) (string, bool) {
	parts := strings.Split(stripPort(host), ".")
	if len(parts) < 2 || parts[0] == "" {
		return "", false
	}
	// ≥3 labels: subdomain form.  Exactly 2: apex form, first label as a
	// stand-in until a mapping row exists.
	return parts[0], true
}

//
// SQLMapper: domain→slug lookup table
//

// SQLMapper resolves custom domains through the `domain_slug` table and
// falls back to the heuristic on a miss.  Schema:
//
//	CREATE TABLE domain_slug (
//	    domain VARCHAR(255) PRIMARY KEY,
//	    slug   VARCHAR(100) NOT NULL
//	);
type SQLMapper struct {
	DB       *sqlx.DB
	Fallback HostMapper
}

// NewSQLMapper builds a mapper over db with the heuristic fallback.
func NewSQLMapper(db *sqlx.DB) *SQLMapper {
	return &SQLMapper{DB: db, Fallback: Heuristic{}}
}

// Slug looks the hostname up in domain_slug, then defers to the fallback.
func (m *SQLMapper) Slug(ctx context.Context, host string) (string, bool) {
	lookup := stripPort(host)

	var slug string
	err := m.DB.GetContext(ctx, &slug,
		`SELECT slug FROM domain_slug WHERE domain = ? LIMIT 1`, lookup)
	switch {
	case err == nil && slug != "":
		return slug, true
	case errors.Is(err, sql.ErrNoRows):
		// fall through to heuristic
	case err != nil:
		zap.S().Warnw("domain_slug lookup failed", "host", lookup, "err", err)
	}

	if m.Fallback == nil {
		return "", false
	}
	return m.Fallback.Slug(ctx, host)
}
