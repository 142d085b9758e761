// internal/routing/resolver_test.go
//
// Table-driven coverage of the rewrite decision: subdomain and apex
// hostnames, the /api and /assets exclusions, localhost and dev
// pass-through, and idempotency of an already-prefixed path.

package routing

import (
	"context"
	"testing"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		host string
		path string
		dev  bool
		want Decision
	}{
		{"subdomain root", "pizza-roma.example.com", "/", false, Rewrite("/pizza-roma")},
		{"subdomain deep path", "pizza-roma.example.com", "/menu", false, Rewrite("/pizza-roma/menu")},
		{"apex domain", "pizza-roma.bj", "/", false, Rewrite("/pizza-roma")},
		{"already prefixed", "pizza-roma.example.com", "/pizza-roma/menu", false, PassThrough()},
		{"api traffic", "pizza-roma.example.com", "/api/webhook", false, PassThrough()},
		{"asset path, exact", "pizza-roma.example.com", "/assets", false, PassThrough()},
		{"asset subpath still rewritten", "pizza-roma.example.com", "/assets/template1/x.css", false, Rewrite("/pizza-roma/assets/template1/x.css")},
		{"localhost", "localhost:3000", "/pizza-roma", false, PassThrough()},
		{"dev mode", "pizza-roma.example.com", "/", true, PassThrough()},
		{"bare hostname", "intranet", "/", false, PassThrough()},
		{"host with port", "pizza-roma.example.com:8443", "/", false, Rewrite("/pizza-roma")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.host, tc.path, tc.dev)
			if got != tc.want {
				t.Fatalf("Resolve(%q, %q, %v) = %+v, want %+v", tc.host, tc.path, tc.dev, got, tc.want)
			}
		})
	}
}

// A rewritten path fed back through Resolve must come out untouched, so a
// proxy loop cannot stack slug prefixes.
func TestResolve_Idempotent(t *testing.T) {
	first := Resolve("pizza-roma.example.com", "/menu", false)
	if !first.Rewritten {
		t.Fatalf("first pass: %+v, want rewrite", first)
	}
	second := Resolve("pizza-roma.example.com", first.Path, false)
	if second.Rewritten {
		t.Fatalf("second pass rewrote again: %+v", second)
	}
}

func TestStripPort(t *testing.T) {
	cases := []struct{ in, want string }{
		{"pizza-roma.example.com:8443", "pizza-roma.example.com"},
		{"pizza-roma.example.com", "pizza-roma.example.com"},
		{"[::1]:8080", "::1"},
		{"[2001:db8::1]:443", "2001:db8::1"},
		{"::1", "::1"}, // unbracketed literal, no port to strip
	}
	for _, tc := range cases {
		if got := stripPort(tc.in); got != tc.want {
			t.Errorf("stripPort(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// An IPv6 Host header yields no dotted labels, so nothing is rewritten.
func TestResolve_IPv6HostPassesThrough(t *testing.T) {
	if got := Resolve("[2001:db8::1]:443", "/", false); got != PassThrough() {
		t.Fatalf("Resolve = %+v, want pass-through", got)
	}
}

// staticMapper pins host→slug pairs for ResolveWith tests.
type staticMapper map[string]string

func (m staticMapper) Slug(_ context.Context, host string) (string, bool) {
	s, ok := m[stripPort(host)]
	return s, ok
}

func TestResolveWith_CustomMapper(t *testing.T) {
	m := staticMapper{"lagourmandise.com": "la-gourmandise"}

	got := ResolveWith(context.Background(), m, "lagourmandise.com", "/menu", false)
	if want := Rewrite("/la-gourmandise/menu"); got != want {
		t.Fatalf("mapped host: %+v, want %+v", got, want)
	}

	// Unknown host: no slug candidate, nothing to rewrite.
	got = ResolveWith(context.Background(), m, "unknown.example.com", "/", false)
	if got != PassThrough() {
		t.Fatalf("unmapped host: %+v, want pass-through", got)
	}
}
