// Package log provides a small structured logging layer over [log/slog].
//
// Loggers are configured with functional options when they are created:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
//	logger.Info("tokens collected", slog.Int("count", 4))
//
// # Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded. [ParseLevel] and [ParseFormat] accept the names used on the
// command line.
//
// # Formats
//
// [FormatText] is the default. With [WithPretty] it is colorized through
// lipgloss whenever the output is a terminal. [FormatJSON] emits one JSON
// object per line.
//
// # Package-level logger
//
// The package-level functions ([Debug], [InfoContext], and so on) write to
// a shared logger that starts at [LevelWarn] on standard error. [Config]
// reconfigures it; it is safe to call concurrently with logging.
//
// In a js/wasm build, standard error is forwarded to the browser console by
// the Go runtime's JavaScript glue, so the same configuration applies there.
package log
