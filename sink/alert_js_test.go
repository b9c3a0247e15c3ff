//go:build js && wasm && wealert

package sink

import (
	"slices"
	"syscall/js"
	"testing"
)

func TestAlert(t *testing.T) {
	var calls []call

	stubConsole(t, &calls)
	stubGlobal(t, "alert", recordCalls(t, &calls, "alert").Value)

	if Strategy != "alert" {
		t.Errorf("Strategy = %q, want alert", Strategy)
	}

	s := Default()
	s.Emit("Usage: demo\n", Info)
	s.Emit("demo: error: bad\n", Error)

	want := []call{
		{method: "alert", text: "Usage: demo"},
		{method: "alert", text: "demo: error: bad"},
	}
	if !slices.Equal(calls, want) {
		t.Errorf("calls = %+v, want %+v", calls, want)
	}
}

func TestAlert_FallsBackToConsole(t *testing.T) {
	var calls []call

	stubConsole(t, &calls)
	stubGlobal(t, "alert", js.Undefined())

	Alert().Emit("Usage: demo\n", Info)

	want := []call{{method: "error", text: "Usage: demo"}}
	if !slices.Equal(calls, want) {
		t.Errorf("calls = %+v, want %+v", calls, want)
	}
}
