// Package cache stores rendered deck artifacts between runs.
//
// A [Cache] is a byte store keyed by strings. Keys are produced by a [Keyer]
// from content hashes: the deck source bytes, the fingerprints of the images
// it uses and the render options. Any change to an input therefore produces
// a new key and stale entries simply age out.
//
// # Backends
//
//   - [FileCache]: JSON entries under ~/.cache/stackdeck (CLI default)
//   - [RedisCache]: shared cache for the preview server (redis:// URLs)
//   - [MongoCache]: shared cache with a TTL index (mongodb:// URLs)
//   - [NullCache]: disables caching (--no-cache)
//
// [Open] selects a backend from a URL.
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store for built decks and rendered artifacts.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases connections held by the backend.
	Close() error
}

// Default TTLs for cached entries.
const (
	TTLDeck     = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
