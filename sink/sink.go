// Package sink decides where human-readable parser output goes.
//
// A native build writes informational text (help, version) to standard
// output and errors to standard error. A js/wasm build has no streams worth
// reading, so it uses one browser strategy chosen at build time:
//
//	GOOS=js GOARCH=wasm go build                 # browser console (default)
//	GOOS=js GOARCH=wasm go build -tags wealert   # blocking alert() dialog
//
// Exactly one strategy is linked into a build; [Strategy] names it.
package sink

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Severity classifies emitted text.
type Severity int

const (
	// Info is text the user asked for, such as help or version output.
	Info Severity = iota
	// Error is text describing a failure.
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Sink delivers rendered text to the user.
type Sink interface {
	Emit(text string, severity Severity)
}

// Func adapts an ordinary function to [Sink].
type Func func(text string, severity Severity)

// Emit calls f(text, severity).
func (f Func) Emit(text string, severity Severity) { f(text, severity) }

type stream struct {
	out, err io.Writer
	label    lipgloss.Style
}

// Stream returns a Sink writing [Info] text to out and [Error] text to err.
//
// A trailing newline is added when missing. When err is a terminal, the
// first "error:" label in error text is highlighted.
func Stream(out, err io.Writer) Sink {
	return stream{
		out: out,
		err: err,
		label: lipgloss.NewRenderer(err).NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true),
	}
}

func (s stream) Emit(text string, severity Severity) {
	if text == "" {
		return
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	w := s.out

	if severity == Error {
		w = s.err
		text = strings.Replace(text, "error:", s.label.Render("error:"), 1)
	}

	_, _ = io.WriteString(w, text)
}

// Emission is one call to [Recorder.Emit].
type Emission struct {
	Text     string
	Severity Severity
}

// Recorder is a Sink that remembers what it was given, in order.
// The zero value is ready to use.
type Recorder struct {
	mu      sync.Mutex
	emitted []Emission
}

// Emit records text and severity.
func (r *Recorder) Emit(text string, severity Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.emitted = append(r.emitted, Emission{Text: text, Severity: severity})
}

// Emissions returns a copy of everything recorded so far.
func (r *Recorder) Emissions() []Emission {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Emission(nil), r.emitted...)
}
