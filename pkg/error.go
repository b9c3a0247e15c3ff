package pkg

import (
	"fmt"
	"log/slog"
	"strings"
)

// Error is an error with a fixed message, an optional wrapped cause, and
// structured attributes for logging.
//
// The sentinel values below are *Error. Errors derived from a sentinel with
// [Error.Wrap], [Error.Wrapf], or [Error.With] still match it with
// [errors.Is].
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError returns an Error with the given message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func (e *Error) Error() string {
	// Use the first form that matches the fields set:
	//
	//   1. "<msg>: <err>"
	//   2. "<msg>"
	//   3. "<err>"
	//   4. ""
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t != nil && t.msg == e.msg
}

// LogValue implements [slog.LogValuer].
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Attrs returns the structured attributes attached with [Error.With].
func (e *Error) Attrs() []slog.Attr { return e.attrs }

// Attr returns the value of the last attribute named key.
func (e *Error) Attr(key string) (slog.Value, bool) {
	for i := len(e.attrs) - 1; i >= 0; i-- {
		if e.attrs[i].Key == key {
			return e.attrs[i].Value, true
		}
	}

	return slog.Value{}, false
}

// ProgramKey names the attribute holding argument zero on an error that
// replaced a whole argument list.
const ProgramKey = "program"

// Wrap returns a copy of e wrapping err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// Wrapf returns a copy of e wrapping a formatted error.
func (e *Error) Wrapf(format string, args ...any) *Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	merged := make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	merged = append(merged, e.attrs...)
	merged = append(merged, attrs...)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: merged,
	}
}

// Sentinel errors shared by all wekong packages.
var (
	// ErrDecode reports an argument that is not valid text: an OS argument
	// that is not UTF-8, or a URL segment with a bad percent-escape.
	ErrDecode = NewError("argument is not valid text")

	// ErrGrammar reports arguments that do not satisfy the caller's grammar.
	ErrGrammar = NewError("invalid arguments")

	// ErrHelp reports a user request for help or version text.
	// It is informational rather than a failure.
	ErrHelp = NewError("help requested")

	// ErrUnsupported reports an operation the build target cannot perform.
	ErrUnsupported = NewError("not supported on this target")

	// ErrConfig reports a configuration document that cannot be loaded.
	ErrConfig = NewError("invalid configuration")
)
