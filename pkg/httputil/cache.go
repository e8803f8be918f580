package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// ErrExpired is returned by [Cache.Get] when an entry exists but has
// outlived its TTL. The stale bytes remain on disk; callers should fetch
// fresh data and overwrite the entry with [Cache.Set].
var ErrExpired = errors.New("cache entry expired")

// Cache stores JSON-marshalable values as files, one per key. File names
// are the SHA-256 of the key, so arbitrary keys (URLs included) map to
// safe names, and entries expire by file modification time.
//
// A Cache instance is not goroutine-safe, but separate instances and
// separate processes may share a directory. Use [Cache.Namespace] to
// prefix keys per data source:
//
//	legacy := cache.Namespace("legacy:")
//	legacy.Set("dashboard-7", rows)  // stored under "legacy:dashboard-7"
type Cache struct {
	dir    string
	ttl    time.Duration
	prefix string
}

// NewCache creates a cache under dir with the given TTL. An empty dir
// selects the platform default, ~/.cache/gridpush/http on Linux. The
// directory is created if missing; creation failure is the only error.
// A ttl of 0 disables expiry.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "gridpush", "http")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl, prefix: ""}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the entry time-to-live. 0 means entries never expire.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get unmarshals the entry for key into v, which must be a pointer.
// The three outcomes:
//   - (true, nil): fresh hit, v populated
//   - (false, nil): no entry, v untouched
//   - (false, ErrExpired): entry outlived the TTL, v untouched
//
// Any other error is an I/O or unmarshal failure. Get never mutates the
// cache; an expired entry stays on disk until Set overwrites it.
func (c *Cache) Get(key string, v any) (bool, error) {
	path := c.keyPath(c.prefix + key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

// Set marshals v to JSON and writes it under key, replacing any previous
// entry and restarting its TTL.
func (c *Cache) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(c.keyPath(c.prefix+key), data, 0o644)
}

// Namespace returns a view of the cache that prefixes every key. Views
// share the directory and TTL with their parent, and calls chain:
//
//	cache.Namespace("remote:").Namespace("legacy:")  // prefix "remote:legacy:"
//
// An empty prefix returns a view equivalent to the parent.
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{
		dir:    c.dir,
		ttl:    c.ttl,
		prefix: c.prefix + prefix,
	}
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
