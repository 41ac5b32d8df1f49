package fbtext

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/fbtext/layout"
	"github.com/gogpu/fbtext/text"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for fbtext and its sub-packages.
// By default, fbtext produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by fbtext:
//   - [slog.LevelDebug]: per-run diagnostics (glyph count, measured box, anchor)
//   - [slog.LevelWarn]: glyphs skipped because their outline could not be used
//
// Example:
//
//	// Report skipped glyphs to stderr:
//	fbtext.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	fbtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	layout.SetLogger(l)
	text.SetLogger(l)
}

// Logger returns the current logger used by fbtext.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
