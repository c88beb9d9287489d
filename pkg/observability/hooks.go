// Package observability provides hooks for instrumenting the card pipeline.
//
// Library packages stay free of logging and metrics backends; instead they
// emit events through hook interfaces registered here. The defaults are
// no-ops, so uninstrumented use costs a map-free interface call and nothing
// else. The CLI registers debug-logging hooks under --verbose; a host
// embedding the renderer can plug in whatever backend it runs.
//
// Three event categories cover the pipeline:
//
//   - RenderHooks: card rendering and typeface resolution
//   - CacheHooks:  hits, misses and writes for API and card caches
//   - APIHooks:    requests against the stats API
//
// Hooks are registered once at startup:
//
//	observability.SetRenderHooks(&myHooks{})
//
// and consulted by libraries at the corresponding call sites:
//
//	observability.Cache().OnHit(ctx, "api")
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from card rendering. Rendering is pure
// computation without a context, so these carry none.
type RenderHooks interface {
	// OnRenderStart fires before a card of the given kind is drawn.
	OnRenderStart(kind string)

	// OnRenderComplete fires when drawing finishes or fails.
	OnRenderComplete(kind string, duration time.Duration, err error)

	// OnFontFallback fires when a configured or system typeface cannot be
	// used and resolution falls through to the next candidate.
	OnFontFallback(weight string)
}

// CacheHooks receives events from cache lookups and writes. The keyType
// distinguishes the cached artifact: "api" payloads or rendered "card"s.
type CacheHooks interface {
	OnHit(ctx context.Context, keyType string)
	OnMiss(ctx context.Context, keyType string)
	OnSet(ctx context.Context, keyType string, size int)
}

// APIHooks receives events from stats API calls.
type APIHooks interface {
	OnRequest(ctx context.Context, endpoint string)
	OnResponse(ctx context.Context, endpoint string, status int, duration time.Duration)
	OnError(ctx context.Context, endpoint string, err error)
}

// NoopRenderHooks ignores all render events.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(string)                         {}
func (NoopRenderHooks) OnRenderComplete(string, time.Duration, error) {}
func (NoopRenderHooks) OnFontFallback(string)                        {}

// NoopCacheHooks ignores all cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnHit(context.Context, string)       {}
func (NoopCacheHooks) OnMiss(context.Context, string)      {}
func (NoopCacheHooks) OnSet(context.Context, string, int)  {}

// NoopAPIHooks ignores all API events.
type NoopAPIHooks struct{}

func (NoopAPIHooks) OnRequest(context.Context, string)                             {}
func (NoopAPIHooks) OnResponse(context.Context, string, int, time.Duration)        {}
func (NoopAPIHooks) OnError(context.Context, string, error)                        {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	apiHooks    APIHooks    = NoopAPIHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers render hooks. Call once at startup, before any
// rendering happens; nil is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCacheHooks registers cache hooks. Call once at startup; nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetAPIHooks registers API hooks. Call once at startup; nil is ignored.
func SetAPIHooks(h APIHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		apiHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// API returns the registered API hooks.
func API() APIHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return apiHooks
}

// Reset restores the no-op defaults. Primarily for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
	apiHooks = NoopAPIHooks{}
}
