// internal/config/loader_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeRoot lays out a minimal <root>/conf/global.yaml and points
// RESTAU_ROOT at it.
func writeRoot(t *testing.T, yaml string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "conf"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "conf", "global.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RESTAU_ROOT", root)
	return root
}

func TestLoad_DefaultsApplied(t *testing.T) {
	root := writeRoot(t, "http:\n  listen_addr: \":8080\"\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.ListenAddr != ":8080" {
		t.Errorf("listen_addr = %q", cfg.HTTP.ListenAddr)
	}
	if cfg.Store.Backend != "fs" {
		t.Errorf("backend = %q, want fs default", cfg.Store.Backend)
	}
	if want := filepath.Join(root, "data", "restaurants"); cfg.Store.Dir != want {
		t.Errorf("store dir = %q, want %q", cfg.Store.Dir, want)
	}
	if want := filepath.Join(root, "templates"); cfg.Templates.Dir != want {
		t.Errorf("templates dir = %q, want %q", cfg.Templates.Dir, want)
	}
	if cfg.Loader.TimeoutMS != 5000 {
		t.Errorf("timeout = %d, want 5000 default", cfg.Loader.TimeoutMS)
	}
	if cfg.Paths.Root != root {
		t.Errorf("root = %q, want %q", cfg.Paths.Root, root)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	writeRoot(t, "http:\n  listen_addr: \":8080\"\n")
	t.Setenv("RESTAU_HTTP__LISTEN_ADDR", ":9090")
	t.Setenv("RESTAU_STORE__BACKEND", "s3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.ListenAddr != ":9090" {
		t.Errorf("listen_addr = %q, env override must win", cfg.HTTP.ListenAddr)
	}
	if cfg.Store.Backend != "s3" {
		t.Errorf("backend = %q, env override must win", cfg.Store.Backend)
	}
}

func TestLoad_RejectsInvalidBackend(t *testing.T) {
	writeRoot(t, "http:\n  listen_addr: \":8080\"\nstore:\n  backend: carrier-pigeon\n")

	if _, err := Load(); err == nil {
		t.Fatal("Load must reject an unknown store backend")
	}
}

func TestLoad_RejectsMissingListenAddr(t *testing.T) {
	writeRoot(t, "store:\n  backend: fs\n")

	if _, err := Load(); err == nil {
		t.Fatal("Load must reject a config without http.listen_addr")
	}
}

func TestGetReturnsLastLoaded(t *testing.T) {
	writeRoot(t, "http:\n  listen_addr: \":8081\"\n")
	if _, err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := Get(); got == nil || got.HTTP.ListenAddr != ":8081" {
		t.Fatalf("Get = %+v", got)
	}
}
