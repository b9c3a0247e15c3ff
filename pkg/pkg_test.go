package pkg

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if Name != "wekong" {
		t.Errorf("Expected Name to be %q, got %q", "wekong", Name)
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version() != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version())
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Error("Expected Author to have at least one entry")
	}
}

func TestPrefixAndDirs(t *testing.T) {
	prefix := Prefix()
	if prefix == "" || strings.HasPrefix(prefix, ".") {
		t.Errorf("unexpected prefix %q", prefix)
	}

	if filepath.Base(ConfigDir()) != prefix {
		t.Errorf("ConfigDir %q does not end in %q", ConfigDir(), prefix)
	}

	if filepath.Base(CacheDir()) != prefix {
		t.Errorf("CacheDir %q does not end in %q", CacheDir(), prefix)
	}

	if got := ConfigPath("config.yaml"); got != filepath.Join(ConfigDir(), "config.yaml") {
		t.Errorf("ConfigPath = %q", got)
	}
}

func TestError_Format(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message", NewError("failed"), "failed"},
		{"wrapped", NewError("failed").Wrap(cause), "failed: boom"},
		{"cause only", (&Error{}).Wrap(cause), "boom"},
		{"empty", &Error{}, ""},
		{"formatted", ErrDecode.Wrapf("argument %d", 2), "argument is not valid text: argument 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_IsSentinel(t *testing.T) {
	cause := errors.New("bad escape")
	err := fmt.Errorf("collect: %w",
		ErrDecode.Wrap(cause).With(slog.Int("index", 3)))

	if !errors.Is(err, ErrDecode) {
		t.Error("derived error should match its sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("derived error should match its cause")
	}

	if errors.Is(err, ErrGrammar) {
		t.Error("derived error should not match an unrelated sentinel")
	}

	var e *Error
	if !errors.As(err, &e) || len(e.Attrs()) != 1 {
		t.Fatalf("expected *Error with one attribute, got %#v", e)
	}
}

func TestError_With_DoesNotAlias(t *testing.T) {
	base := ErrGrammar.With(slog.String("a", "1"))
	one := base.With(slog.String("b", "2"))
	two := base.With(slog.String("c", "3"))

	if len(base.Attrs()) != 1 || len(one.Attrs()) != 2 || len(two.Attrs()) != 2 {
		t.Fatal("unexpected attribute counts")
	}

	if one.Attrs()[1].Key != "b" || two.Attrs()[1].Key != "c" {
		t.Error("derived errors share attribute storage")
	}
}

func TestError_Attr(t *testing.T) {
	err := ErrDecode.With(
		slog.String(ProgramKey, "old"),
		slog.Int("index", 1),
		slog.String(ProgramKey, "calc"),
	)

	if v, ok := err.Attr(ProgramKey); !ok || v.String() != "calc" {
		t.Errorf("Attr() = %v, %v; want the last value", v, ok)
	}

	if _, ok := err.Attr("missing"); ok {
		t.Error("Attr() found a key that was never set")
	}
}

func TestError_LogValue(t *testing.T) {
	v := ErrHelp.Wrap(errors.New("--help")).With(slog.Int("code", 0)).LogValue()

	if v.Kind() != slog.KindGroup {
		t.Fatalf("expected group, got %v", v.Kind())
	}

	keys := make([]string, 0, 3)
	for _, a := range v.Group() {
		keys = append(keys, a.Key)
	}

	if strings.Join(keys, ",") != "error,cause,code" {
		t.Errorf("unexpected keys %v", keys)
	}
}
