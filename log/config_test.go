package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"Warn", LevelWarn},
		{"error", LevelError},
		{"warn+2", Level(6)},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{" JSON ", FormatJSON},
		{"text", FormatText},
		{"yaml", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormat(tt.in); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelsAndFormats_RoundTrip(t *testing.T) {
	for name := range Levels() {
		if got := ParseLevel(name).String(); got != name {
			t.Errorf("level %q round-tripped to %q", name, got)
		}
	}

	if got := slices.Collect(Formats()); !slices.Equal(got, []string{"text", "json"}) {
		t.Errorf("Formats() = %v", got)
	}
}

func TestConfig_Options(t *testing.T) {
	c := apply(config{},
		WithLevel(LevelDebug),
		WithFormat(FormatJSON),
		WithCaller(true),
		WithPretty(false),
		nil, // ignored
	)

	if c.level != LevelDebug || c.format != FormatJSON || !c.caller || c.pretty {
		t.Errorf("unexpected config: %+v", c)
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

	tests := []struct {
		layout string
		want   string
	}{
		{"RFC3339", "2024-03-09T14:05:06Z"},
		{"rfc-3339", "2024-03-09T14:05:06Z"},
		{"Kitchen", "2:05PM"},
		{"DateTime", "2024-03-09 14:05:06"},
		{"2006/01/02", "2024/03/09"},
		{"none", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			if got := makeFormatTimeFunc(tt.layout)(ts); got != tt.want {
				t.Errorf("layout %q: got %q, want %q", tt.layout, got, tt.want)
			}
		})
	}
}
