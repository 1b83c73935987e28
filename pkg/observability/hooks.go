// Package observability provides hooks for metrics and tracing.
//
// Libraries emit events through small hook interfaces; the binary registers
// concrete implementations (Prometheus in the HTTP server) at startup. This
// keeps the pipelines free of any metrics dependency.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetEditionHooks(metrics)
//	observability.SetHTTPHooks(metrics)
//
// Libraries call hooks to emit events:
//
//	observability.Edition().OnSourceComplete(ctx, "blog", len(posts), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Edition Hooks
// =============================================================================

// EditionHooks receives events from the edition aggregator and the article
// pipeline.
type EditionHooks interface {
	// OnSourceComplete records one edition source run. A non-nil err means
	// the source degraded to its empty default.
	OnSourceComplete(ctx context.Context, source string, items int, duration time.Duration, err error)

	// OnEditionComplete records a finished aggregation.
	OnEditionComplete(ctx context.Context, degraded int, duration time.Duration)

	// OnArticleComplete records one article fetch and transform.
	OnArticleComplete(ctx context.Context, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, namespace string)
	OnCacheMiss(ctx context.Context, namespace string)
	OnCacheSet(ctx context.Context, namespace string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from upstream HTTP requests.
type HTTPHooks interface {
	// OnResponse records a completed upstream request.
	OnResponse(ctx context.Context, host string, statusCode int, duration time.Duration)

	// OnError records a transport failure (no response received).
	OnError(ctx context.Context, host string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEditionHooks is a no-op implementation of EditionHooks.
type NoopEditionHooks struct{}

func (NoopEditionHooks) OnSourceComplete(context.Context, string, int, time.Duration, error) {}
func (NoopEditionHooks) OnEditionComplete(context.Context, int, time.Duration)             {}
func (NoopEditionHooks) OnArticleComplete(context.Context, time.Duration, error)           {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnResponse(context.Context, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	editionHooks EditionHooks = NoopEditionHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetEditionHooks registers custom edition hooks.
// This should be called once at application startup.
func SetEditionHooks(h EditionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editionHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Edition returns the registered edition hooks.
func Edition() EditionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editionHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	editionHooks = NoopEditionHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
