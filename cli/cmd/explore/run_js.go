//go:build js && wasm

package explore

import (
	"context"

	"github.com/ardnew/wekong/pkg"
)

// Run fails: a browser page has no terminal.
func Run(context.Context, Config) error {
	return pkg.ErrUnsupported.Wrapf("explore needs a terminal")
}
