// Package we makes a kong command line work the same in a terminal and in a
// web browser.
//
// Replace kong's entry points with the ones in this package:
//
//	kong.Parse(&cli)          ->  we.Matches(&cli)
//	parser.Parse(os.Args[1:]) ->  we.TryMatches(&cli)
//	(build and parse a T)     ->  we.Parse[T]() / we.TryParse[T]()
//
// A native build reads [os.Args]. Help and version text goes to standard
// output and errors go to standard error, and the process exits: status 0
// for help and version, non-zero for errors.
//
// A js/wasm build reads the page URL instead. The path becomes the program
// name and each '&'-separated query segment one argument:
//
//	https://example.org/demo/?--value&2.5&calc&1+2
//
// Help and error text goes to the browser console, or to an alert() dialog
// when built with -tags wealert.
//
// # Web placeholders
//
// A page cannot exit. After help or an error has been shown in a js/wasm
// build, [Parse] returns the zero value of T and [Matches] returns a
// placeholder [kong.Context] whose Error field holds the [*Failure] and
// which has no selected command. Callers should check for it and stop:
//
//	ktx := we.Matches(&cli)
//	if ktx.Error != nil {
//		return // message already shown
//	}
//
// In a native build the process has already exited by then, so the
// placeholder is never seen there.
package we
