package log

import (
	"context"
	"log/slog"
)

// QuietHandler wraps an slog.Handler and passes through only records at or
// above a minimum level. Unlike setting a level on the underlying handler,
// wrapping lets a caller silence one phase of a run (the figure save) while
// the rest keeps its configured verbosity.
//
// Design decision: a handler wrapper rather than a custom logger type, so
// it composes with any underlying handler and with code that accepts a
// plain *slog.Logger.
type QuietHandler struct {
	handler slog.Handler
	min     slog.Level
}

// NewQuietHandler creates a QuietHandler that suppresses records below min.
// If handler is nil, the current default handler is wrapped.
func NewQuietHandler(handler slog.Handler, min slog.Level) *QuietHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &QuietHandler{handler: handler, min: min}
}

// Enabled reports whether the handler handles records at the given level.
func (h *QuietHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level < h.min {
		return false
	}
	return h.handler.Enabled(ctx, level)
}

// Handle passes the record through when it meets the minimum level.
func (h *QuietHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level < h.min {
		return nil
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new QuietHandler whose underlying handler has the
// given attributes.
func (h *QuietHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &QuietHandler{handler: h.handler.WithAttrs(attrs), min: h.min}
}

// WithGroup returns a new QuietHandler whose underlying handler has the
// given group.
func (h *QuietHandler) WithGroup(name string) slog.Handler {
	return &QuietHandler{handler: h.handler.WithGroup(name), min: h.min}
}
