//go:build js && wasm && !wealert

package sink

import (
	"strings"
	"syscall/js"
)

// Strategy names the output strategy linked into this build.
const Strategy = "console"

// Console returns a Sink writing [Info] text with console.log and [Error]
// text with console.error.
func Console() Sink {
	return Func(func(text string, severity Severity) {
		method := "log"
		if severity == Error {
			method = "error"
		}

		js.Global().Get("console").Call(method, strings.TrimRight(text, "\n"))
	})
}

// Default returns the output sink of the build target: [Console].
func Default() Sink { return Console() }
