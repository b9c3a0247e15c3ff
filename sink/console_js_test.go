//go:build js && wasm && !wealert

package sink

import (
	"slices"
	"testing"
)

func TestConsole(t *testing.T) {
	var calls []call

	stubConsole(t, &calls)

	if Strategy != "console" {
		t.Errorf("Strategy = %q, want console", Strategy)
	}

	s := Default()
	s.Emit("Usage: demo\n", Info)
	s.Emit("demo: error: bad\n", Error)

	want := []call{
		{method: "log", text: "Usage: demo"},
		{method: "error", text: "demo: error: bad"},
	}
	if !slices.Equal(calls, want) {
		t.Errorf("calls = %+v, want %+v", calls, want)
	}
}
