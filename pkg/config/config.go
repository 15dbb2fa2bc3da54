// Package config loads balustrade settings from a TOML file.
//
// The file is optional. When present it lives at
// $XDG_CONFIG_HOME/balustrade/config.toml (or ~/.config/balustrade/config.toml)
// and looks like:
//
//	min_span  = 10
//	thickness = "1 1/2"
//	format    = "text"
//
//	[cache]
//	backend   = "file"   # file, redis or none
//	ttl       = "720h"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
//
// Command-line flags override file values.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/balustrade/pkg/cache"
	"github.com/matzehuels/balustrade/pkg/errors"
)

// AppName names the config and cache directories.
const AppName = "balustrade"

// Defaults.
const (
	DefaultMinSpan = 10.0
	DefaultFormat  = "text"
	DefaultAddr    = ":8080"
	DefaultTTL     = 30 * 24 * time.Hour
)

// Config holds every setting the CLI and server read.
type Config struct {
	MinSpan   float64 `toml:"min_span"`
	Thickness string  `toml:"thickness"`
	Format    string  `toml:"format"`
	Cache     Cache   `toml:"cache"`
	Server    Server  `toml:"server"`
}

// Cache configures the result cache.
type Cache struct {
	Backend  string   `toml:"backend"`
	TTL      Duration `toml:"ttl"`
	RedisURL string   `toml:"redis_url"`
	Prefix   string   `toml:"prefix"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a Go duration string in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MinSpan: DefaultMinSpan,
		Format:  DefaultFormat,
		Cache: Cache{
			Backend: cache.BackendFile,
			TTL:     Duration{DefaultTTL},
		},
		Server: Server{Addr: DefaultAddr},
	}
}

// Load reads path on top of [Default]. A missing file is not an error when
// path is the default location; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.MinSpan < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "min_span must not be negative")
	}
	if err := errors.ValidateFormat(c.Format); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case cache.BackendFile, cache.BackendNone:
	case cache.BackendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}

// Encode writes cfg as TOML to path, creating parent directories.
func Encode(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the XDG cache directory (~/.cache/balustrade/).
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
