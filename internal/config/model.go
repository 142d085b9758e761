// internal/config/model.go
//
// Typed configuration model for the engine.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                          – dotenv values,
//   • `conf/global.yaml`                       – primary static file,
//   • `RESTAU_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.  DevMode preserves explicit /slug/...
// paths instead of deriving slugs from hostnames.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	DevMode    bool   `koanf:"dev_mode"`
}

//
// Store section
//

// Store selects and parameterizes the config store backend.
type Store struct {
	Backend string `koanf:"backend" validate:"required,oneof=fs s3"`

	// fs backend
	Dir string `koanf:"dir"` // default <root>/data/restaurants

	// s3 backend
	S3Region string `koanf:"s3_region"`
	S3Bucket string `koanf:"s3_bucket"`
	S3Prefix string `koanf:"s3_prefix"`

	// optional Redis read-through cache (empty addr disables)
	RedisAddr       string `koanf:"redis_addr"`
	RedisTTLSeconds int    `koanf:"redis_ttl_seconds"`
}

//
// Routing section
//

// Routing configures slug derivation.  DomainDSN, when set, enables the
// MySQL-backed domain→slug lookup table in front of the heuristic.
type Routing struct {
	DomainDSN string `koanf:"domain_dsn"`
}

//
// Templates section
//

// Templates points at the on-disk template trees.
type Templates struct {
	Dir string `koanf:"dir"` // default <root>/templates
}

//
// Loader section
//

// Loader bounds the per-load store read.
type Loader struct {
	TimeoutMS int `koanf:"timeout_ms"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or RESTAU_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // RESTAU_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP      HTTP      `koanf:"http"`
	Store     Store     `koanf:"store"`
	Routing   Routing   `koanf:"routing"`
	Templates Templates `koanf:"templates"`
	Loader    Loader    `koanf:"loader"`
	Paths     Paths     `koanf:"-"` // not loaded from config files
}
