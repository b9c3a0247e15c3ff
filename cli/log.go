package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/wekong/log"
)

// logLevel applies itself to the default logger as soon as kong decodes it,
// so that messages logged during the rest of the parse use the new level.
type logLevel string

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

// logFormat applies itself to the default logger as soon as kong decodes it.
type logFormat string

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"${logLevel}"  enum:"${logLevelEnum}"  help:"Set log level."                      placeholder:"${enum}"`
	Format     logFormat `default:"${logFormat}" enum:"${logFormatEnum}" help:"Set log format."                     placeholder:"${enum}"`
	TimeLayout string    `default:"RFC3339"                             help:"Set timestamp layout (none to omit)."`
	Caller     bool      `default:"false"                               help:"Include caller information."                              negatable:""`
	Pretty     bool      `default:"true"                                help:"Colorize text output."                                    negatable:""`
}

func (logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevel":      log.LevelWarn.String(),
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormat":     log.DefaultFormat.String(),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start applies every parsed field, including those kong decodes without
// an UnmarshalText hook.
func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger configured",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logging flags found anywhere in args before kong runs, so
// that the parse itself, and any error it reports, is logged as requested.
// Unknown or malformed flags are left for kong to report.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		name, value, assigned := strings.Cut(args[i], "=")

		switch name {
		case "--log-level", "--log-format", "--log-time-layout":
			if !assigned {
				if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
					continue
				}

				i++
				value = args[i]
			}

			f.set(name, value)

		case "--log-caller", "--log-pretty", "--no-log-caller", "--no-log-pretty":
			on := true

			if assigned {
				v, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				on = v
			}

			if strings.HasPrefix(name, "--no-") {
				on = !on
				name = "--" + strings.TrimPrefix(name, "--no-")
			}

			f.set(name, strconv.FormatBool(on))
		}
	}
}

func (f *logConfig) set(name, value string) {
	switch name {
	case "--log-level":
		_ = f.Level.UnmarshalText([]byte(value))

	case "--log-format":
		_ = f.Format.UnmarshalText([]byte(value))

	case "--log-time-layout":
		f.TimeLayout = value
		log.Config(log.WithTimeLayout(value))

	case "--log-caller":
		f.Caller = value == "true"
		log.Config(log.WithCaller(f.Caller))

	case "--log-pretty":
		f.Pretty = value == "true"
		log.Config(log.WithPretty(f.Pretty))
	}
}
