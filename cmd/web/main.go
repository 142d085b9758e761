// cmd/web/main.go
//
// restau-engine – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (.env fallback for dev).
//
//  2. Start rotating logger (tees to console when running in a TTY).
//
//  3. Load layered app config (conf/global.yaml + RESTAU_ env overlay).
//
//  4. Build the config store (fs or S3, optional Redis read-through).
//
//  5. Parse every template directory into the registry; the registry is
//     also the validator's template-existence check.
//
//  6. Wire the slug mapper (domain→slug table when a DSN is configured,
//     first-label heuristic otherwise).
//
//  7. Expose Prometheus /metrics and serve the tenant router.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/zerotoone/restau-engine/internal/analytics"
	"github.com/zerotoone/restau-engine/internal/config"
	"github.com/zerotoone/restau-engine/internal/database"
	"github.com/zerotoone/restau-engine/internal/logger"
	"github.com/zerotoone/restau-engine/internal/routing"
	"github.com/zerotoone/restau-engine/internal/server"
	"github.com/zerotoone/restau-engine/internal/store"
	"github.com/zerotoone/restau-engine/internal/tenant"
	"github.com/zerotoone/restau-engine/internal/theme"
	"github.com/zerotoone/restau-engine/internal/web"
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { _ = godotenv.Load() }

func main() {
	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logOut.Fatalf("load config: %v", err)
	}

	//
	// ── 1.  Config store ────────────────────────────────────────────────
	//
	var backing store.Store
	switch cfg.Store.Backend {
	case "s3":
		s3store, err := store.NewS3(context.Background(),
			cfg.Store.S3Region, cfg.Store.S3Bucket, cfg.Store.S3Prefix)
		if err != nil {
			logOut.Fatalf("init s3 store: %v", err)
		}
		backing = s3store
	default:
		backing = store.NewFS(cfg.Store.Dir)
	}

	if cfg.Store.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Store.RedisAddr})
		ttl := time.Duration(cfg.Store.RedisTTLSeconds) * time.Second
		backing = store.NewRedisCache(client, backing, ttl)
		logOut.Infow("config cache online", "addr", cfg.Store.RedisAddr, "ttl", ttl)
	}

	//
	// ── 2.  Template registry ───────────────────────────────────────────
	//
	mgr := theme.Manager{BaseDir: cfg.Templates.Dir}
	registry, err := mgr.LoadAll()
	if err != nil {
		logOut.Fatalf("load templates: %v", err)
	}
	logOut.Infow("templates loaded", "count", len(registry.IDs()))

	//
	// ── 3.  Slug mapper ─────────────────────────────────────────────────
	//
	var mapper routing.HostMapper = routing.Heuristic{}
	if dsn := cfg.Routing.DomainDSN; dsn != "" {
		db, err := database.Open(dsn)
		if err != nil {
			logOut.Fatalf("connect domain DB: %v", err)
		}
		defer db.Close()
		mapper = routing.NewSQLMapper(db)
		logOut.Infow("domain→slug table online")
	}

	//
	// ── 4.  Loader and server ───────────────────────────────────────────
	//
	loader := tenant.NewLoader(backing, registry,
		time.Duration(cfg.Loader.TimeoutMS)*time.Millisecond)

	srv := &web.Server{
		Loader:    loader,
		Templates: registry,
		Mapper:    mapper,
		Tracker:   analytics.NewTracker(),
		AssetsDir: filepath.Join(cfg.Paths.Root, "assets"),
		DevMode:   cfg.HTTP.DevMode,
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", srv.Router())

	httpSrv := server.New(cfg.HTTP.ListenAddr, mux)
	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := httpSrv.ListenAndServe(); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
}
