// Package logging wraps *slog.Logger with nil-safe helpers shared by the
// encoders.
package logging

import (
	"context"
	"log/slog"
)

// LevelTrace is more verbose than Debug. It is used for per-symbol
// logging such as code set switches.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

var ctx = context.Background()

// Logger wraps slog.Logger. The zero value discards everything.
type Logger struct {
	L *slog.Logger
}

// New returns a Logger tagged with the given component name.
func New(l *slog.Logger, component string) Logger {
	if l == nil {
		return Logger{}
	}
	return Logger{L: l.With(slog.String("component", component))}
}

// Enabled returns true if logging is enabled at the given level.
func (l Logger) Enabled(level slog.Level) bool {
	return l.L != nil && l.L.Enabled(ctx, level)
}

// Log emits a log message if logging is enabled.
func (l Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	if l.Enabled(level) {
		l.L.LogAttrs(ctx, level, msg, attrs...)
	}
}

// Debug emits a debug-level log.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.Log(slog.LevelDebug, msg, attrs...)
}

// TraceEnabled returns true if trace-level logging is enabled.
func (l Logger) TraceEnabled() bool {
	return l.Enabled(LevelTrace)
}

// Trace emits a trace-level log.
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.Log(LevelTrace, msg, attrs...)
}
