package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of a pretty handler. Styles come from a renderer
// bound to the handler's writer, so colors are dropped automatically when
// the writer is not a terminal.
type palette struct {
	key, str, num, flag, time, source lipgloss.Style
	level                             map[slog.Level]lipgloss.Style
}

func makePalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	color := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:    color("8"),
		str:    color("6"),
		num:    color("3"),
		flag:   color("2"),
		time:   color("4"),
		source: color("8").Italic(true),
		level: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): color("5"),
			slog.LevelDebug:        color("4"),
			slog.LevelInfo:         color("2"),
			slog.LevelWarn:         color("3").Bold(true),
			slog.LevelError:        color("1").Bold(true),
		},
	}
}

// prettyHandler writes one colorized line per record:
//
//	TIME LEVEL message key=value group.key=value
type prettyHandler struct {
	opts       slog.HandlerOptions
	formatTime FormatTime
	style      palette
	mu         *sync.Mutex
	w          io.Writer
	prefix     string // dotted group path for attributes added later
	preformat  []byte // attributes added with WithAttrs, already rendered
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
) *prettyHandler {
	return &prettyHandler{
		opts:       *opts,
		formatTime: formatTime,
		style:      makePalette(w),
		mu:         &sync.Mutex{},
		w:          w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		if ts := h.formatTime(r.Time); ts != "" {
			buf.WriteString(h.style.time.Render(ts))
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(h.levelStyle(r.Level).Render(
		fmt.Sprintf("%-5s", strings.ToUpper(Level(r.Level).String())),
	))
	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			buf.WriteByte(' ')
			buf.WriteString(h.style.source.Render(
				src.File + ":" + strconv.Itoa(src.Line),
			))
		}
	}

	buf.Write(h.preformat)

	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	c := *h
	buf := bytes.NewBuffer(append([]byte(nil), h.preformat...))

	for _, a := range attrs {
		h.appendAttr(buf, h.prefix, a)
	}

	c.preformat = buf.Bytes()

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) levelStyle(level slog.Level) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return h.style.level[slog.LevelError]
	case level >= slog.LevelWarn:
		return h.style.level[slog.LevelWarn]
	case level >= slog.LevelInfo:
		return h.style.level[slog.LevelInfo]
	case level >= slog.LevelDebug:
		return h.style.level[slog.LevelDebug]
	default:
		return h.style.level[slog.Level(LevelTrace)]
	}
}

func (h *prettyHandler) appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			h.appendAttr(buf, group, ga)
		}

		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.style.key.Render(prefix + a.Key + "="))
	buf.WriteString(h.renderValue(a.Value))
}

func (h *prettyHandler) renderValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64, slog.KindDuration:
		return h.style.num.Render(v.String())

	case slog.KindBool:
		return h.style.flag.Render(v.String())

	case slog.KindTime:
		return h.style.time.Render(h.formatTime(v.Time()))

	default:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"=") {
			s = strconv.Quote(s)
		}

		return h.style.str.Render(s)
	}
}
