package we

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/wekong/log"
	"github.com/ardnew/wekong/pkg"
	"github.com/ardnew/wekong/sink"
	"github.com/ardnew/wekong/source"
)

// environment is the capability set of a build target: where arguments come
// from, where text goes, and how (or whether) the program ends.
//
// Each exported entry point takes a fresh environment from current, so
// nothing is shared between calls.
type environment struct {
	target Target
	source source.Source
	sink   sink.Sink
	exit   func(code int) // unused on Web
}

// exitSignal carries a status passed to kong's exit function out of a parse.
type exitSignal int

// outcome is the result of one parse: a context or a failure, never both.
// The parser is set whenever the grammar was valid.
type outcome struct {
	parser *kong.Kong
	ctx    *kong.Context
	fail   *Failure
}

// parse collects arguments and runs them through kong.
//
// kong reports help, version, and errors by writing to its writers and then
// calling its exit function. Both are replaced here: output is buffered, and
// exit unwinds the parse with an exitSignal that is recovered below. This
// gives the same outcome on every target, and the caller then decides
// whether that outcome ends the process.
//
// A grammar kong rejects is a programming error and panics, as with
// [kong.Must].
func (e environment) parse(grammar any, options []kong.Option) (out outcome) {
	args, srcErr := e.source()
	if srcErr != nil {
		// Name the failure after the program even though no list came back.
		if name := source.Program(srcErr); name != "" {
			args = []string{name}
		}
	}

	var stdout, stderr bytes.Buffer

	out.parser = kong.Must(grammar, e.options(args, options,
		kong.Writers(&stdout, &stderr),
		kong.Exit(func(code int) { panic(exitSignal(code)) }),
	)...)

	if srcErr != nil {
		out.parser.Errorf("%s", srcErr)
		out.fail = &Failure{
			err:  asError(srcErr, pkg.ErrDecode),
			text: stderr.String(),
			code: 1,
		}

		return out
	}

	var parseErr error

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		code, ok := r.(exitSignal)
		if !ok {
			panic(r)
		}

		out.ctx = nil
		out.fail = exited(int(code), parseErr, stdout.String(), stderr.String())
	}()

	log.Trace("parsing arguments",
		slog.String("target", e.target.String()),
		slog.String("name", out.parser.Model.Name),
		slog.Int("count", len(args)),
	)

	out.ctx, parseErr = out.parser.Parse(tail(args))

	// Renders the error and usage, then exits; a no-op on success.
	out.parser.FatalIfErrorf(parseErr)

	return out
}

// options orders kong options so that the caller can override the program
// name derived from args, and wekong's own options override the caller's.
func (e environment) options(
	args []string,
	caller []kong.Option,
	own ...kong.Option,
) []kong.Option {
	opts := make([]kong.Option, 0, len(caller)+len(own)+1)

	if name := programName(args); name != "" {
		opts = append(opts, kong.Name(name))
	}

	opts = append(opts, caller...)

	return append(opts, own...)
}

// deliver shows the text of f and, on Native, exits with its status.
// On Web it returns, and the caller hands back a placeholder.
func (e environment) deliver(f *Failure) {
	log.Debug("parse ended without a value",
		slog.String("target", e.target.String()),
		slog.String("severity", f.Severity().String()),
		slog.Any("failure", f),
	)

	e.sink.Emit(f.Text(), f.Severity())

	if e.target == Native && e.exit != nil {
		e.exit(f.ExitCode())
	}
}

// printHelp renders help for grammar without parsing any arguments and
// delivers it with [sink.Info]. On Web, rendering errors are dropped.
func (e environment) printHelp(
	grammar any,
	summary bool,
	options []kong.Option,
) error {
	args, _ := e.source()

	var stdout bytes.Buffer

	parser, err := kong.New(grammar, e.options(args, options,
		kong.Writers(&stdout, io.Discard),
		kong.Exit(func(int) {}),
	)...)
	if err != nil {
		return err
	}

	// kong renders an empty context in full, so the summary is printed
	// with the short printer kong uses for usage on error.
	ktx, err := kong.Trace(parser, nil)
	if err == nil {
		if summary {
			err = kong.DefaultShortHelpPrinter(kong.HelpOptions{Summary: true}, ktx)
		} else {
			err = ktx.PrintUsage(false)
		}
	}

	if err != nil {
		if e.target == Web {
			log.Warn("help rendering failed", slog.Any("error", err))

			return nil
		}

		return err
	}

	e.sink.Emit(stdout.String(), sink.Info)

	return nil
}

// exited converts an exit request from kong into a Failure. Status zero
// without an error is help or version output; anything else is an error,
// reported with any usage text that kong printed first.
func exited(code int, err error, stdout, stderr string) *Failure {
	if code == 0 && err == nil {
		return &Failure{err: pkg.ErrHelp, text: stdout}
	}

	if code == 0 {
		code = 1
	}

	if err == nil {
		// A hook called Exit directly; its message is all there is.
		msg := strings.TrimSpace(stderr)
		if msg == "" {
			msg = fmt.Sprintf("exit status %d", code)
		}

		err = errors.New(msg)
	}

	return &Failure{
		err:  pkg.ErrGrammar.Wrap(err),
		text: stdout + stderr,
		code: code,
	}
}

// asError returns err as a *pkg.Error, wrapping it in kind if it is not one.
func asError(err error, kind *pkg.Error) *pkg.Error {
	var e *pkg.Error
	if errors.As(err, &e) {
		return e
	}

	return kind.Wrap(err)
}

func tail(args []string) []string {
	if len(args) < 2 {
		return nil
	}

	return args[1:]
}

// programName derives a display name from argument zero: the base name of
// an executable, or for a URL the last path element without extension,
// falling back to the host.
func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return ""
	}

	name := args[0]

	if strings.Contains(name, "://") {
		u, err := url.Parse(name)
		if err != nil {
			return ""
		}

		base := path.Base(strings.TrimRight(u.Path, "/"))
		base = strings.TrimSuffix(base, path.Ext(base))

		switch base {
		case "", ".", "/", "index":
			return u.Hostname()
		default:
			return base
		}
	}

	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}

	return base
}
