// internal/tenant/errors.go
//
// Load-failure taxonomy.
//
// Three terminal outcomes for a load: the slug has no stored config
// (ErrNotFound), the stored bytes are not valid JSON (*ParseError), or the
// parsed tree breaks an invariant (*restaurant.ValidationError, passed
// through untouched).  None are retried—validation and resolution are
// deterministic, so retrying without changing input is pointless—and all
// of them render the tenant-not-found fallback rather than a partial site.

package tenant

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no config exists for the slug.
var ErrNotFound = errors.New("restaurant non trouvé")

// ParseError is returned when stored bytes are not well-formed JSON.  The
// caller treats it like ErrNotFound but the diagnostic is kept distinct.
type ParseError struct {
	Slug   string
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("JSON invalide pour %q: %s", e.Slug, e.Detail)
}
