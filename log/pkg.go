package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// DefaultContextProvider returns the context used by context-unaware
// logging functions.
var DefaultContextProvider = context.TODO

var defaultLog atomic.Pointer[Logger]

func init() {
	l := Make(os.Stderr, WithLevel(LevelWarn))
	defaultLog.Store(&l)
}

// Default returns the package-level logger.
func Default() Logger { return *defaultLog.Load() }

// SetDefault replaces the package-level logger.
func SetDefault(l Logger) { defaultLog.Store(&l) }

// Config applies opts to the package-level logger.
func Config(opts ...Option) {
	l := Default().Wrap(opts...)
	defaultLog.Store(&l)
}

// With returns the package-level logger with attrs added to each message.
func With(attrs ...slog.Attr) Logger { return Default().With(attrs...) }

// The helpers below call logDepth directly so that caller information points
// at their call site: Callers, logDepth, the helper.

// TraceContext logs at [LevelTrace] using the package-level logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logDepth(ctx, 3, LevelTrace, msg, attrs...)
}

// Trace logs at [LevelTrace] using the package-level logger.
func Trace(msg string, attrs ...slog.Attr) {
	Default().logDepth(DefaultContextProvider(), 3, LevelTrace, msg, attrs...)
}

// DebugContext logs at [LevelDebug] using the package-level logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logDepth(ctx, 3, LevelDebug, msg, attrs...)
}

// Debug logs at [LevelDebug] using the package-level logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().logDepth(DefaultContextProvider(), 3, LevelDebug, msg, attrs...)
}

// InfoContext logs at [LevelInfo] using the package-level logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logDepth(ctx, 3, LevelInfo, msg, attrs...)
}

// Info logs at [LevelInfo] using the package-level logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().logDepth(DefaultContextProvider(), 3, LevelInfo, msg, attrs...)
}

// WarnContext logs at [LevelWarn] using the package-level logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logDepth(ctx, 3, LevelWarn, msg, attrs...)
}

// Warn logs at [LevelWarn] using the package-level logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().logDepth(DefaultContextProvider(), 3, LevelWarn, msg, attrs...)
}

// ErrorContext logs at [LevelError] using the package-level logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logDepth(ctx, 3, LevelError, msg, attrs...)
}

// Error logs at [LevelError] using the package-level logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().logDepth(DefaultContextProvider(), 3, LevelError, msg, attrs...)
}
