// Package cache provides caching for board documents and rendered artifacts.
//
// The [Cache] interface abstracts over three backends:
//   - [FileCache]: directory-backed cache for CLI usage
//   - [RedisCache]: Redis-backed cache for server deployments
//   - [NullCache]: no-op cache for tests or when caching is disabled
//
// Cache keys are produced by a [Keyer]. Board documents are keyed by board ID
// so writes can invalidate them directly; rendered artifacts are keyed by a
// content hash of the board plus the render options, so a stale entry can
// never be served for a modified board.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is the interface implemented by all cache backends.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss.
// Errors indicate backend failures, not misses; callers typically treat
// errors as misses and recompute.
type Cache interface {
	// Get retrieves a value from the cache.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value in the cache. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value from the cache. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// TTLs for the different cached value types.
const (
	// TTLBoard bounds how long a board document read through the cache can
	// lag behind the store.
	TTLBoard = 5 * time.Minute

	// TTLRender is deliberately long: artifact keys include the board's
	// content hash, so entries go stale only when the key is never asked
	// for again.
	TTLRender = 24 * time.Hour
)

// Backend names accepted by [Open].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Options selects and configures a cache backend.
type Options struct {
	// Backend is one of "none", "file", or "redis". Empty means "none".
	Backend string

	// Dir is the cache directory for the file backend.
	Dir string

	// URL is the connection URL for the redis backend, e.g.
	// redis://localhost:6379/0.
	URL string

	// KeyPrefix namespaces all keys, allowing several deployments to share
	// one backend. Empty means no prefix.
	KeyPrefix string
}

// Open creates the cache backend selected by opts along with a matching
// keyer. When opts.KeyPrefix is set, the keyer prefixes every generated key.
func Open(opts Options) (Cache, Keyer, error) {
	keyer := NewDefaultKeyer()
	if opts.KeyPrefix != "" {
		keyer = NewScopedKeyer(keyer, opts.KeyPrefix)
	}

	switch opts.Backend {
	case "", BackendNone:
		return NewNullCache(), keyer, nil
	case BackendFile:
		c, err := NewFileCache(opts.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("open file cache: %w", err)
		}
		return c, keyer, nil
	case BackendRedis:
		c, err := NewRedisCache(opts.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis cache: %w", err)
		}
		return c, keyer, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}
