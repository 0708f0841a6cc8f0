package imdraw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so attribute
// arguments at the call sites are never formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// logger holds the package logger. A host may swap it from its own
// goroutine while the render loop logs.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(silent)
}

// SetLogger routes imdraw's diagnostics to l. Nil restores the default,
// which discards everything.
//
// Records carry an "imdraw:" message prefix:
//   - Debug "pipeline created" and "vertex buffer created" from NewRenderer
//   - Debug "resize" and "ignoring zero-size resize" from Resize
//   - Debug "frame driver created", "frame submitted" and "frame driver closed"
//     from FrameDriver
//   - Warn "frame dropped" from EndFrame when the batch overflows, with the
//     requested vertex count and the capacity
//
// The imdemo command passes a charmbracelet/log handler here when run with
// -debug.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
