package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/balustrade/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MinSpan != DefaultMinSpan {
		t.Errorf("MinSpan = %v, want %v", cfg.MinSpan, DefaultMinSpan)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
min_span  = 24
thickness = "1 1/2"
format    = "json"

[cache]
backend   = "redis"
ttl       = "2h"
redis_url = "redis://cache:6379/1"
prefix    = "rail:"

[server]
addr = "127.0.0.1:9000"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.MinSpan != 24 {
		t.Errorf("MinSpan = %v, want 24", cfg.MinSpan)
	}
	if cfg.Thickness != "1 1/2" {
		t.Errorf("Thickness = %q", cfg.Thickness)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q", cfg.Format)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisURL != "redis://cache:6379/1" || cfg.Cache.Prefix != "rail:" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 2*time.Hour {
		t.Errorf("Cache.TTL = %v, want 2h", cfg.Cache.TTL.Duration)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `thickness = "1¾"`))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Thickness != "1¾" {
		t.Errorf("Thickness = %q", cfg.Thickness)
	}
	if cfg.MinSpan != DefaultMinSpan || cfg.Server.Addr != DefaultAddr {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `min_span = `},
		{"unknown key", `colour = "red"`},
		{"bad format", `format = "yaml"`},
		{"negative span", `min_span = -1`},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"redis without url", "[cache]\nbackend = \"redis\""},
		{"bad ttl", "[cache]\nttl = \"soon\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load should fail")
			}
			if !errors.IsInvalid(err) {
				t.Errorf("Load error code = %v, want an invalid-input code", errors.GetCode(err))
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") with no file error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load of an explicit missing path should fail")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	want := Default()
	want.Thickness = "2 ¼"
	want.Cache.TTL = Duration{90 * time.Minute}

	if err := Encode(path, want); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	p, err := DefaultPath()
	if err != nil || p != "/tmp/xdg-config/balustrade/config.toml" {
		t.Errorf("DefaultPath() = %q, %v", p, err)
	}
	d, err := CacheDir()
	if err != nil || d != "/tmp/xdg-cache/balustrade" {
		t.Errorf("CacheDir() = %q, %v", d, err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
