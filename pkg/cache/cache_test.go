package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "board:abc")
	if err != nil || hit || data != nil {
		t.Fatalf("Get = (%v, %v, %v), want miss", data, hit, err)
	}

	// Writes succeed but are never readable back
	if err := c.Set(ctx, "board:abc", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "board:abc"); hit {
		t.Error("NullCache should not retain writes")
	}

	if err := c.Delete(ctx, "board:abc"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss on empty cache
	_, hit, err := c.Get(ctx, "board:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("empty cache should miss")
	}

	// Set then hit
	if err := c.Set(ctx, "board:abc", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "board:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(data) != "payload" {
		t.Errorf("Get returned %q, want %q", data, "payload")
	}

	// Delete then miss
	if err := c.Delete(ctx, "board:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "board:abc")
	if hit {
		t.Error("expected miss after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "board:missing"); err != nil {
		t.Errorf("Delete of missing key should not error: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("stale"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should miss")
	}

	// Zero TTL never expires
	if err := c.Set(ctx, "forever", []byte("data"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "forever")
	if !hit {
		t.Error("zero-TTL entry should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("data"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// Corrupt the entry file on disk
	fc := c.(*FileCache)
	path := fc.path("key")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("corrupt write error: %v", err)
	}

	// Corrupt entries are treated as misses and removed
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("corrupt entry should miss")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry file should be removed")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("different inputs should produce different hashes")
	}
	// SHA-256 as hex is 64 characters
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// Board keys stay human-readable
	if got := k.BoardKey("dashboard-1"); got != "board:dashboard-1" {
		t.Errorf("BoardKey = %s, want board:dashboard-1", got)
	}

	// Every render input that changes the artifact must change the key
	base := k.RenderKey("hash123", RenderKeyOpts{Format: "svg", CellSize: 40})
	variants := map[string]string{
		"format":     k.RenderKey("hash123", RenderKeyOpts{Format: "png", CellSize: 40}),
		"show grid":  k.RenderKey("hash123", RenderKeyOpts{Format: "svg", CellSize: 40, ShowGrid: true}),
		"board hash": k.RenderKey("hash456", RenderKeyOpts{Format: "svg", CellSize: 40}),
	}
	for name, key := range variants {
		if key == base {
			t.Errorf("changing %s did not change the render key", name)
		}
	}

	if base != k.RenderKey("hash123", RenderKeyOpts{Format: "svg", CellSize: 40}) {
		t.Error("RenderKey should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "staging:")

	if got := scoped.BoardKey("dashboard-1"); got != "staging:board:dashboard-1" {
		t.Errorf("BoardKey = %s, want staging:board:dashboard-1", got)
	}
	if got := scoped.RenderKey("hash123", RenderKeyOpts{Format: "svg"}); len(got) < 8 || got[:8] != "staging:" {
		t.Errorf("RenderKey not prefixed: %s", got)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// A nil inner keyer falls back to the default
	scoped := NewScopedKeyer(nil, "prefix:")
	if got := scoped.BoardKey("abc"); got != "prefix:board:abc" {
		t.Errorf("BoardKey = %s, want prefix:board:abc", got)
	}
}

func TestOpen(t *testing.T) {
	// Empty backend means caching disabled
	c, k, err := Open(Options{})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if _, ok := c.(*NullCache); !ok {
		t.Error("empty backend should select NullCache")
	}
	if k == nil {
		t.Error("Open should always return a keyer")
	}

	// File backend
	dir := filepath.Join(t.TempDir(), "cache")
	c, _, err = Open(Options{Backend: BackendFile, Dir: dir})
	if err != nil {
		t.Fatalf("Open file backend error: %v", err)
	}
	defer c.Close()
	if _, ok := c.(*FileCache); !ok {
		t.Error("file backend should select FileCache")
	}

	// Key prefix wraps the keyer
	_, k, err = Open(Options{KeyPrefix: "tenant:"})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if got := k.BoardKey("x"); got != "tenant:board:x" {
		t.Errorf("prefixed keyer unexpected: %s", got)
	}

	// Unknown backend is an error
	if _, _, err := Open(Options{Backend: "bogus"}); err == nil {
		t.Error("unknown backend should error")
	}
}
