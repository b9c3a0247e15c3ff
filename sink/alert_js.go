//go:build js && wasm && wealert

package sink

import (
	"strings"
	"syscall/js"
)

// Strategy names the output strategy linked into this build.
const Strategy = "alert"

// Alert returns a Sink showing all text in a modal alert() dialog.
//
// alert() blocks the page, and the calling goroutine, until the user
// dismisses it. Where no alert function exists (a web worker), the text
// goes to console.error instead.
func Alert() Sink {
	return Func(func(text string, _ Severity) {
		text = strings.TrimRight(text, "\n")

		if alert := js.Global().Get("alert"); alert.Type() == js.TypeFunction {
			alert.Invoke(text)

			return
		}

		js.Global().Get("console").Call("error", text)
	})
}

// Default returns the output sink of the build target: [Alert].
func Default() Sink { return Alert() }
