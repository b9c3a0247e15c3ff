// Package urlargs turns a URL into a sequence of command-line arguments.
//
// The path (everything before the first '?') becomes argument zero, the
// program name. Each '&'-separated segment of the query becomes one more
// argument, percent-decoded. The fragment is dropped:
//
//	http://host/app.html?--verbose&--name&J%C3%BCrgen#top
//
// yields "http://host/app.html", "--verbose", "--name", "Jürgen".
//
// Segments are not split on '='. A segment such as "--name=x" is passed
// through whole, and the grammar parser decides what it means.
package urlargs

import (
	"iter"
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/wekong/pkg"
)

type phase uint8

const (
	phasePath phase = iota
	phaseQuery
	phaseDone
)

// Args is a forward-only iterator over the arguments of one URL.
// It cannot be rewound; call [New] again to start over.
type Args struct {
	rest  string
	path  string
	phase phase
	index int
	err   error
}

// New returns an iterator over the arguments of rawURL.
func New(rawURL string) *Args {
	return &Args{rest: rawURL}
}

// Next returns the next argument. The second result is false once the
// arguments are exhausted, and stays false on every later call.
//
// The first call always yields the path, which is empty for an empty URL.
// A query that is empty after the fragment is removed ("page?" or
// "page?#top") yields nothing further. Empty segments inside a non-empty
// query ("?a&&b") are kept as empty arguments.
func (a *Args) Next() (string, bool) {
	switch a.phase {
	case phasePath:
		s := a.rest
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}

		path, query, _ := strings.Cut(s, "?")

		a.rest = query
		a.path = path
		a.phase = phaseQuery

		if query == "" {
			a.phase = phaseDone
		}

		a.index++

		return path, true

	case phaseQuery:
		seg, rest, more := strings.Cut(a.rest, "&")

		a.rest = rest
		if !more {
			a.phase = phaseDone
		}

		arg, err := decode(seg)
		if err != nil {
			a.err = err.With(
				slog.Int("index", a.index),
				slog.String("segment", seg),
				slog.String(pkg.ProgramKey, a.path),
			)
			a.rest = ""
			a.phase = phaseDone

			return "", false
		}

		a.index++

		return arg, true

	default:
		return "", false
	}
}

// Err returns the decode error that ended iteration early, if any.
// The error matches [pkg.ErrDecode] and carries the path, which always
// decodes, under the [pkg.ProgramKey] attribute.
func (a *Args) Err() error { return a.err }

// All returns an iterator over the remaining arguments.
// Check [Args.Err] after the loop.
func (a *Args) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			arg, ok := a.Next()
			if !ok || !yield(arg) {
				return
			}
		}
	}
}

// Collect returns every argument of rawURL.
// If a segment cannot be decoded, no arguments are returned.
func Collect(rawURL string) ([]string, error) {
	a := New(rawURL)

	var args []string
	for arg := range a.All() {
		args = append(args, arg)
	}

	if err := a.Err(); err != nil {
		return nil, err
	}

	return args, nil
}

// decode percent-decodes seg. A '+' is kept literally: arguments are not
// form values.
func decode(seg string) (string, *pkg.Error) {
	s, err := url.PathUnescape(seg)
	if err != nil {
		return "", pkg.ErrDecode.Wrap(err)
	}

	if !utf8.ValidString(s) {
		return "", pkg.ErrDecode.Wrapf("invalid UTF-8 in %q", seg)
	}

	return s, nil
}
