package we

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/wekong/pkg"
	"github.com/ardnew/wekong/sink"
	"github.com/ardnew/wekong/source"
)

type flags struct {
	Value   float64          `help:"Number to work with." short:"v"`
	Verbose bool             `help:"Say more."`
	Version kong.VersionFlag `help:"Print version and quit."`
	Name    string           `arg:"" optional:""`
}

type commands struct {
	Value float64 `help:"Number to work with."`

	Add struct {
		A int `arg:""`
		B int `arg:""`
	} `cmd:"" help:"Add two integers."`

	Echo struct {
		Words []string `arg:"" optional:""`
	} `cmd:"" help:"Print words."`
}

type harness struct {
	env   environment
	rec   *sink.Recorder
	exits []int
}

func newHarness(target Target, argv ...string) *harness {
	h := &harness{rec: &sink.Recorder{}}
	h.env = environment{
		target: target,
		source: source.Args(argv),
		sink:   h.rec,
		exit:   func(code int) { h.exits = append(h.exits, code) },
	}

	return h
}

func TestParse_Success(t *testing.T) {
	h := newHarness(Native, "/usr/local/bin/demo", "--value", "2.5", "--verbose", "x")

	got := parseWith[flags](h.env, nil)

	want := flags{Value: 2.5, Verbose: true, Name: "x"}
	if got != want {
		t.Errorf("parseWith() = %+v, want %+v", got, want)
	}

	if n := len(h.rec.Emissions()); n != 0 {
		t.Errorf("got %d emissions on success", n)
	}

	if len(h.exits) != 0 {
		t.Errorf("exit called with %v on success", h.exits)
	}
}

func TestParse_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		target   Target
		argv     []string
		severity sink.Severity
		contains []string
		exit     bool // want a non-zero status
		exits    int
	}{
		{
			name:     "help native",
			target:   Native,
			argv:     []string{"demo", "--help"},
			severity: sink.Info,
			contains: []string{"Usage: demo", "Number to work with."},
			exits:    1,
		},
		{
			name:     "version native",
			target:   Native,
			argv:     []string{"demo", "--version"},
			severity: sink.Info,
			contains: []string{"1.2.3"},
			exits:    1,
		},
		{
			name:     "unknown flag native",
			target:   Native,
			argv:     []string{"demo", "--bogus"},
			severity: sink.Error,
			contains: []string{"demo: error:", "--bogus"},
			exit:     true,
			exits:    1,
		},
		{
			name:     "bad value web",
			target:   Web,
			argv:     []string{"/demo/", "--value", "abc"},
			severity: sink.Error,
			contains: []string{"demo: error:", "--value"},
		},
		{
			name:     "help web",
			target:   Web,
			argv:     []string{"/demo/", "-h"},
			severity: sink.Info,
			contains: []string{"Usage: demo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(tt.target, tt.argv...)

			got := parseWith[flags](h.env, []kong.Option{
				kong.Vars{"version": "1.2.3"},
			})
			if got != (flags{}) {
				t.Errorf("parseWith() = %+v, want zero value", got)
			}

			emitted := h.rec.Emissions()
			if len(emitted) != 1 {
				t.Fatalf("got %d emissions, want 1: %+v", len(emitted), emitted)
			}

			if emitted[0].Severity != tt.severity {
				t.Errorf("severity = %v, want %v", emitted[0].Severity, tt.severity)
			}

			for _, s := range tt.contains {
				if !strings.Contains(emitted[0].Text, s) {
					t.Errorf("text %q does not contain %q", emitted[0].Text, s)
				}
			}

			if len(h.exits) != tt.exits {
				t.Fatalf("exit called %d times, want %d", len(h.exits), tt.exits)
			}

			if tt.exits > 0 && (h.exits[0] != 0) != tt.exit {
				t.Errorf("exit status = %d, want non-zero: %v", h.exits[0], tt.exit)
			}
		})
	}
}

func TestParse_DecodeError(t *testing.T) {
	tests := []struct {
		name string
		src  source.Source
		want string
	}{
		{"args", source.Args([]string{"/demo/", "ok", "bad\xff"}), "demo: error:"},
		{"url", source.URL("https://example.org/tools/calc.html?ok&%zz"), "calc: error:"},
		{"url without query path", source.URL("https://example.org/?%zz"), "example.org: error:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(Web)
			h.env.source = tt.src

			if got := parseWith[flags](h.env, nil); got != (flags{}) {
				t.Errorf("parseWith() = %+v, want zero value", got)
			}

			emitted := h.rec.Emissions()
			if len(emitted) != 1 || emitted[0].Severity != sink.Error {
				t.Fatalf("unexpected emissions %+v", emitted)
			}

			text := emitted[0].Text
			if !strings.Contains(text, "not valid text") {
				t.Errorf("text %q does not describe the decode error", text)
			}

			if !strings.HasPrefix(text, tt.want) {
				t.Errorf("text %q does not start with %q", text, tt.want)
			}
		})
	}
}

func TestTryParse(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want error
		code int
	}{
		{"ok", []string{"demo", "-v", "1"}, nil, 0},
		{"help", []string{"demo", "--help"}, pkg.ErrHelp, 0},
		{"grammar", []string{"demo", "a", "b"}, pkg.ErrGrammar, 80},
		{"decode", []string{"demo", "\xc3"}, pkg.ErrDecode, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(Native, tt.argv...)

			_, err := tryParseWith[flags](h.env, nil)

			if n := len(h.rec.Emissions()); n != 0 {
				t.Errorf("got %d emissions, want none", n)
			}

			if len(h.exits) != 0 {
				t.Errorf("exit called with %v", h.exits)
			}

			if tt.want == nil {
				if err != nil {
					t.Fatalf("tryParseWith() error = %v", err)
				}

				return
			}

			if !errors.Is(err, tt.want) {
				t.Fatalf("tryParseWith() error = %v, want %v", err, tt.want)
			}

			var f *Failure
			if !errors.As(err, &f) {
				t.Fatalf("error %T is not a *Failure", err)
			}

			if f.ExitCode() != tt.code {
				t.Errorf("ExitCode() = %d, want %d", f.ExitCode(), tt.code)
			}

			if f.Help() != (tt.want == pkg.ErrHelp) {
				t.Errorf("Help() = %v", f.Help())
			}

			if f.Text() == "" {
				t.Error("Text() is empty")
			}
		})
	}
}

func TestMatches(t *testing.T) {
	t.Run("selects command", func(t *testing.T) {
		var cli commands

		h := newHarness(Native, "calc", "add", "2", "3")

		ktx := h.env.matches(&cli, nil)
		if ktx.Error != nil {
			t.Fatalf("ktx.Error = %v", ktx.Error)
		}

		if ktx.Command() != "add <a> <b>" {
			t.Errorf("Command() = %q", ktx.Command())
		}

		if cli.Add.A != 2 || cli.Add.B != 3 {
			t.Errorf("parsed %+v", cli.Add)
		}
	})

	t.Run("web placeholder", func(t *testing.T) {
		var cli commands

		h := newHarness(Web, "/calc/", "add", "two")

		ktx := h.env.matches(&cli, nil)
		if ktx == nil || ktx.Error == nil {
			t.Fatalf("want a placeholder context, got %+v", ktx)
		}

		if !errors.Is(ktx.Error, pkg.ErrGrammar) {
			t.Errorf("ktx.Error = %v", ktx.Error)
		}

		if ktx.Selected() != nil {
			t.Errorf("placeholder selected %v", ktx.Selected())
		}

		if ktx.Kong == nil || ktx.Model.Name != "calc" {
			t.Errorf("placeholder parser is not named for the page")
		}

		if n := len(h.rec.Emissions()); n != 1 {
			t.Errorf("got %d emissions, want 1", n)
		}

		if len(h.exits) != 0 {
			t.Errorf("web target exited with %v", h.exits)
		}
	})

	t.Run("try", func(t *testing.T) {
		var cli commands

		h := newHarness(Native, "calc", "echo", "a", "b")

		ktx, err := h.env.tryMatches(&cli, nil)
		if err != nil {
			t.Fatalf("tryMatches() error = %v", err)
		}

		if got := strings.Join(cli.Echo.Words, " "); got != "a b" || ktx == nil {
			t.Errorf("words = %q", got)
		}

		ktx, err = h.env.tryMatches(&cli, nil)
		if err != nil || ktx == nil {
			t.Errorf("a second parse must succeed independently, got %v", err)
		}

		h = newHarness(Native, "calc")

		ktx, err = h.env.tryMatches(&commands{}, nil)
		if ktx != nil || !errors.Is(err, pkg.ErrGrammar) {
			t.Errorf("tryMatches() = %v, %v; want missing command", ktx, err)
		}
	})
}

func TestPrintHelp(t *testing.T) {
	tests := []struct {
		name    string
		summary bool
		want    string
		omit    string
	}{
		{"summary", true, `Run "calc --help" for more information.`, "Add two integers."},
		{"long", false, `Run "calc <command> --help" for more information on a command.`, ""},
	}

	texts := make(map[bool]string, len(tests))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(Native, "./calc", "add", "not", "parsed")

			if err := h.env.printHelp(&commands{}, tt.summary, nil); err != nil {
				t.Fatalf("printHelp() error = %v", err)
			}

			emitted := h.rec.Emissions()
			if len(emitted) != 1 || emitted[0].Severity != sink.Info {
				t.Fatalf("unexpected emissions %+v", emitted)
			}

			text := emitted[0].Text
			texts[tt.summary] = text

			if !strings.HasPrefix(text, "Usage: calc") {
				t.Errorf("help %q does not start with the usage line", text)
			}

			if !strings.Contains(text, tt.want) {
				t.Errorf("help %q does not contain %q", text, tt.want)
			}

			if tt.omit != "" && strings.Contains(text, tt.omit) {
				t.Errorf("help %q contains %q", text, tt.omit)
			}

			if len(h.exits) != 0 {
				t.Errorf("exit called with %v", h.exits)
			}
		})
	}

	if texts[true] == texts[false] {
		t.Errorf("summary and long help are identical: %q", texts[true])
	}
}

func TestProgramName(t *testing.T) {
	tests := []struct {
		arg0 string
		want string
	}{
		{"/usr/bin/demo", "demo"},
		{"demo", "demo"},
		{"/demo/", "demo"},
		{"/", ""},
		{"", ""},
		{"https://example.org/tools/calc.html?--help", "calc"},
		{"https://example.org/", "example.org"},
		{"http://localhost:8080/index.html", "localhost"},
	}

	for _, tt := range tests {
		if got := programName([]string{tt.arg0}); got != tt.want {
			t.Errorf("programName(%q) = %q, want %q", tt.arg0, got, tt.want)
		}
	}

	if got := programName(nil); got != "" {
		t.Errorf("programName(nil) = %q", got)
	}
}

func TestExited(t *testing.T) {
	f := exited(2, nil, "usage\n", "boom\n")

	if !errors.Is(f, pkg.ErrGrammar) || f.ExitCode() != 2 {
		t.Errorf("exited() = %v (code %d)", f, f.ExitCode())
	}

	if !strings.Contains(f.Error(), "boom") || f.Text() != "usage\nboom\n" {
		t.Errorf("exited() error %q text %q", f.Error(), f.Text())
	}

	if f := exited(0, errors.New("x"), "", ""); f.ExitCode() != 1 || f.Help() {
		t.Errorf("an error must not exit with status 0")
	}
}
