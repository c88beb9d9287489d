package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kanau/tetracard/pkg/observability"
)

// debugHooks surfaces pipeline events as debug-level log lines, so --verbose
// shows cache behavior, API timings and font fallbacks without any extra
// plumbing through the library packages.
type debugHooks struct {
	logger *log.Logger
}

func (h *debugHooks) OnRenderStart(kind string) {
	h.logger.Debug("rendering card", "kind", kind)
}

func (h *debugHooks) OnRenderComplete(kind string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "kind", kind, "error", err)
		return
	}
	h.logger.Debug("rendered card", "kind", kind, "elapsed", d.Round(time.Millisecond))
}

func (h *debugHooks) OnFontFallback(weight string) {
	h.logger.Debug("typeface unavailable, falling back", "weight", weight)
}

func (h *debugHooks) OnHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *debugHooks) OnMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *debugHooks) OnSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache write", "type", keyType, "bytes", size)
}

func (h *debugHooks) OnRequest(_ context.Context, endpoint string) {
	h.logger.Debug("api request", "endpoint", endpoint)
}

func (h *debugHooks) OnResponse(_ context.Context, endpoint string, status int, d time.Duration) {
	h.logger.Debug("api response", "endpoint", endpoint, "status", status, "elapsed", d.Round(time.Millisecond))
}

func (h *debugHooks) OnError(_ context.Context, endpoint string, err error) {
	h.logger.Debug("api transport error", "endpoint", endpoint, "error", err)
}

// registerHooks installs the debug hooks for this process.
func (c *CLI) registerHooks() {
	h := &debugHooks{logger: c.Logger}
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
	observability.SetAPIHooks(h)
}
