package we

import (
	"errors"
	"log/slog"

	"github.com/ardnew/wekong/pkg"
	"github.com/ardnew/wekong/sink"
)

// Failure is the outcome of a parse that produced no value: help or version
// text was requested, the arguments did not fit the grammar, or an argument
// was not valid text.
//
// It matches [pkg.ErrHelp], [pkg.ErrGrammar], or [pkg.ErrDecode] with
// [errors.Is], and wraps the underlying kong error when there is one.
type Failure struct {
	err  *pkg.Error
	text string
	code int
}

func (f *Failure) Error() string { return f.err.Error() }

func (f *Failure) Unwrap() error { return f.err }

// Text returns what the parser rendered for the user: help text, or usage
// followed by an error message.
func (f *Failure) Text() string { return f.text }

// ExitCode returns the process exit status for this outcome. It is zero only
// for help and version requests. It implements [kong.ExitCoder].
func (f *Failure) ExitCode() int { return f.code }

// Severity returns [sink.Info] for help and version requests and
// [sink.Error] otherwise.
func (f *Failure) Severity() sink.Severity {
	if f.Help() {
		return sink.Info
	}

	return sink.Error
}

// Help reports whether the user asked for help or version text.
func (f *Failure) Help() bool { return errors.Is(f.err, pkg.ErrHelp) }

// LogValue implements [slog.LogValuer].
func (f *Failure) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("error", f.err),
		slog.Int("code", f.code),
		slog.Int("text_len", len(f.text)),
	)
}
