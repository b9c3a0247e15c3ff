// Package source decides where raw command-line arguments come from.
//
// A native build reads the process argument list. A js/wasm build reads the
// page URL and tokenizes it with [urlargs]. The choice is made by build
// constraints, so a program calls [Default] and gets the right one.
//
// Every [Source] re-reads its environment on each call; nothing is cached.
package source

import (
	"errors"
	"log/slog"
	"slices"
	"unicode/utf8"

	"github.com/ardnew/wekong/log"
	"github.com/ardnew/wekong/pkg"
	"github.com/ardnew/wekong/urlargs"
)

// Source returns a fresh argument list. Element zero identifies the program
// (an executable path or a page path) and is never a flag.
type Source func() ([]string, error)

// Args returns a Source yielding a copy of argv.
//
// Every element must be valid UTF-8. A single bad element fails the whole
// list with [pkg.ErrDecode]; nothing is dropped or repaired.
func Args(argv []string) Source {
	return func() ([]string, error) {
		for i, arg := range argv {
			if !utf8.ValidString(arg) {
				err := pkg.ErrDecode.
					Wrapf("argument %d: invalid UTF-8 %q", i, arg).
					With(slog.Int("index", i))
				if i > 0 {
					err = err.With(slog.String(pkg.ProgramKey, argv[0]))
				}

				return nil, err
			}
		}

		args := slices.Clone(argv)

		log.Trace("arguments collected",
			slog.String("source", "args"),
			slog.Int("count", len(args)),
		)

		return args, nil
	}
}

// Program returns argument zero as recorded on a failed Source's error,
// or "" if err does not carry it.
func Program(err error) string {
	var e *pkg.Error
	if !errors.As(err, &e) {
		return ""
	}

	if v, ok := e.Attr(pkg.ProgramKey); ok {
		return v.String()
	}

	return ""
}

// URL returns a Source yielding the arguments encoded in rawURL.
// See [urlargs] for the tokenization rules.
func URL(rawURL string) Source {
	return func() ([]string, error) {
		args, err := urlargs.Collect(rawURL)
		if err != nil {
			return nil, err
		}

		log.Trace("arguments collected",
			slog.String("source", "url"),
			slog.Int("count", len(args)),
		)

		return args, nil
	}
}
