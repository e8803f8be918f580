// Package observability carries optional instrumentation hooks for the layout
// engine, the caches, and the API server.
//
// Library code emits events through package-level accessors and never imports
// a metrics backend. The default hooks do nothing, so call sites need no nil
// checks:
//
//	observability.Engine().OnOperationStart(ctx, "resize_width", boardID)
//
// Applications register real implementations once at startup:
//
//	observability.SetEngineHooks(&otelEngineHooks{})
//	observability.SetCacheHooks(&promCacheHooks{})
//
// Custom hooks usually embed the Noop structs so new interface methods do not
// break them.
package observability

import (
	"context"
	"sync"
	"time"
)

// EngineHooks receives events from layout operations.
type EngineHooks interface {
	// OnOperationStart records the start of a layout operation.
	OnOperationStart(ctx context.Context, kind, boardID string)

	// OnOperationComplete records the outcome of a layout operation.
	// componentCount is the size of the resulting layout; err is non-nil for
	// rejections.
	OnOperationComplete(ctx context.Context, kind, boardID string, componentCount int, duration time.Duration, err error)

	// OnValidation records a validator run and how many violations it found.
	OnValidation(ctx context.Context, boardID string, violations int)
}

// CacheHooks receives events from cache lookups and writes.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from the API server.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopEngineHooks discards all engine events.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnOperationStart(context.Context, string, string) {}
func (NoopEngineHooks) OnOperationComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopEngineHooks) OnValidation(context.Context, string, int) {}

// NoopCacheHooks discards all cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks discards all HTTP events.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// The registry holds one implementation per category. Reads vastly outnumber
// writes, so it is guarded by a RWMutex rather than atomics.
var registry = struct {
	sync.RWMutex
	engine EngineHooks
	cache  CacheHooks
	http   HTTPHooks
}{
	engine: NoopEngineHooks{},
	cache:  NoopCacheHooks{},
	http:   NoopHTTPHooks{},
}

// SetEngineHooks registers engine hooks. Call it once at startup before
// operations run; nil is ignored.
func SetEngineHooks(h EngineHooks) {
	if h == nil {
		return
	}
	registry.Lock()
	registry.engine = h
	registry.Unlock()
}

// SetCacheHooks registers cache hooks; nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	registry.Lock()
	registry.cache = h
	registry.Unlock()
}

// SetHTTPHooks registers HTTP hooks; nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	registry.Lock()
	registry.http = h
	registry.Unlock()
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	registry.RLock()
	defer registry.RUnlock()
	return registry.engine
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	registry.RLock()
	defer registry.RUnlock()
	return registry.cache
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	registry.RLock()
	defer registry.RUnlock()
	return registry.http
}

// Reset restores the no-op defaults. Tests use it to isolate themselves.
func Reset() {
	registry.Lock()
	registry.engine = NoopEngineHooks{}
	registry.cache = NoopCacheHooks{}
	registry.http = NoopHTTPHooks{}
	registry.Unlock()
}
