package text

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for font discovery and fallback events.
// iconkit.SetLogger forwards its logger here, so most callers never need
// to call this directly. Pass nil to disable logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by text.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// fontscanLogger adapts slog to the Printf-style logger fontscan expects.
type fontscanLogger struct{}

func (fontscanLogger) Printf(format string, args ...interface{}) {
	Logger().Debug("fontscan", "msg", fmt.Sprintf(format, args...))
}
