//go:build js && wasm

package source

import (
	"syscall/js"

	"github.com/ardnew/wekong/pkg"
)

// Location returns a Source yielding the arguments encoded in the URL of the
// current page, window.location.href.
func Location() Source {
	return func() ([]string, error) {
		loc := js.Global().Get("location")
		if loc.IsUndefined() || loc.IsNull() {
			return nil, pkg.ErrUnsupported.Wrapf("no location object")
		}

		return URL(loc.Get("href").String())()
	}
}

// Default returns the argument source of the build target: [Location].
func Default() Source { return Location() }
