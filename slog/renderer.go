// Package slog provides logging decorators for codewiki services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/codewiki"
)

// Ensure LoggingRenderer implements codewiki.Renderer.
var _ codewiki.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with logging.
type LoggingRenderer struct {
	next   codewiki.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next codewiki.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render logs the page being rendered and delegates to the wrapped renderer.
// Failures are logged at error level.
func (r *LoggingRenderer) Render(ctx context.Context, url string, opts codewiki.RenderOptions, fn func(codewiki.Document) error) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		r.logger.Log(ctx, level, "render",
			"url", url,
			"timeout", opts.Timeout,
			"duration", time.Since(begin),
			"code", codewiki.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, url, opts, fn)
}
