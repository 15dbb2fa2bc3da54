// Package cache provides the storage layer for computed layouts.
//
// A [Cache] is a byte-oriented key/value store with optional expiry. Three
// backends are provided:
//
//   - [FileCache]: JSON entries under a directory, for CLI use
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// Keys are built by a [Keyer] so that the same inputs always map to the same
// entry regardless of which surface produced them.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque values by key.
type Cache interface {
	// Get returns the value for key. A miss is reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
