//go:build js && wasm

package sink

import (
	"syscall/js"
	"testing"
)

type call struct {
	method, text string
}

// stubGlobal replaces the global name with value until the test ends.
func stubGlobal(t *testing.T, name string, value js.Value) {
	t.Helper()

	saved := js.Global().Get(name)
	js.Global().Set(name, value)

	t.Cleanup(func() { js.Global().Set(name, saved) })
}

// recordCalls returns a JS function appending its first argument to calls.
func recordCalls(t *testing.T, calls *[]call, method string) js.Func {
	t.Helper()

	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		*calls = append(*calls, call{method: method, text: args[0].String()})

		return nil
	})

	t.Cleanup(fn.Release)

	return fn
}

// stubConsole replaces console with an object recording log and error.
func stubConsole(t *testing.T, calls *[]call) {
	t.Helper()

	console := js.Global().Get("Object").New()
	console.Set("log", recordCalls(t, calls, "log"))
	console.Set("error", recordCalls(t, calls, "error"))

	stubGlobal(t, "console", console)
}
