//go:build !js

package explore

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/wekong/log"
)

const (
	prompt       = "url ➜ "
	defaultWidth = 80
	hint         = "Type a URL such as /demo?--value&2&calc&value*3 (Esc quits)"
)

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	indexStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tokenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchHitStyle = matchStyle.Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// Run starts an interactive session and blocks until the user quits or
// ctx is done.
func Run(ctx context.Context, cfg Config) error {
	history := NewHistory(cfg.History)
	if err := history.Load(); err != nil {
		log.WarnContext(ctx, "history not loaded",
			slog.String("path", cfg.History),
			slog.Any("error", err),
		)
	}

	_, err := tea.NewProgram(newModel(cfg, history), tea.WithContext(ctx)).Run()

	if serr := history.Save(); serr != nil {
		log.WarnContext(ctx, "history not saved",
			slog.String("path", cfg.History),
			slog.Any("error", serr),
		)
	}

	return err
}

// model is the Bubble Tea model of a session.
type model struct {
	input   textinput.Model
	words   []string
	history *History
	histIdx int // history.Len() when not browsing

	result  result
	matches fuzzy.Matches

	// Tab cycling state: the input and segment bounds before the first Tab.
	tabbing  bool
	tabIdx   int
	preTab   string
	tabStart int
	tabEnd   int

	width    int
	quitting bool
}

func newModel(cfg Config, history *History) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = defaultWidth - len(prompt)
	ti.SetValue(cfg.URL)

	m := model{
		input:   ti,
		words:   cfg.Words,
		history: history,
		histIdx: history.Len(),
		width:   defaultWidth,
	}

	return m.refresh()
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-lipgloss.Width(prompt)-2, 1)

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.browse(-1), nil

	case tea.KeyDown:
		return m.browse(1), nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.tabbing = false

	return m.refresh(), cmd
}

// refresh recomputes the tokens and suggestions for the current input.
func (m model) refresh() model {
	input := m.input.Value()

	m.result = tokenize(input)
	m.matches = nil

	if word, _, _, ok := segment(input, m.input.Position()); ok {
		m.matches = suggest(word, m.words)
	}

	return m
}

// cycle replaces the segment under the cursor with the next (dir 1) or
// previous (dir -1) suggestion.
func (m model) cycle(dir int) model {
	if !m.tabbing {
		if len(m.matches) == 0 {
			return m
		}

		_, start, end, ok := segment(m.input.Value(), m.input.Position())
		if !ok {
			return m
		}

		m.tabbing = true
		m.tabIdx = -1
		m.preTab = m.input.Value()
		m.tabStart, m.tabEnd = start, end

		if dir < 0 {
			m.tabIdx = 0
		}
	}

	n := len(m.matches)
	m.tabIdx = ((m.tabIdx+dir)%n + n) % n

	text, cursor := replace(m.preTab, m.tabStart, m.tabEnd, m.matches[m.tabIdx].Str)
	m.input.SetValue(text)
	m.input.SetCursor(cursor)
	m.result = tokenize(text)

	return m
}

// browse moves through history; moving past the newest entry clears the
// input.
func (m model) browse(dir int) model {
	n := m.history.Len()
	if n == 0 {
		return m
	}

	m.histIdx = min(max(m.histIdx+dir, 0), n)
	m.input.SetValue(m.history.At(m.histIdx))
	m.input.CursorEnd()
	m.tabbing = false

	return m.refresh()
}

// submit prints the current result above the prompt and starts over.
func (m model) submit() (model, tea.Cmd) {
	input := m.input.Value()
	if strings.TrimSpace(input) == "" {
		return m, nil
	}

	m.history.Add(input)
	m.histIdx = m.history.Len()

	out := promptStyle.Render(prompt) + input + "\n" + renderResult(m.result)

	m.input.Reset()
	m.tabbing = false

	return m.refresh(), tea.Println(out)
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.histIdx < m.history.Len():
		b.WriteString(hintStyle.Render(fmt.Sprintf("history %d/%d", m.histIdx+1, m.history.Len())))

	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(hintStyle.Render(hint))

	default:
		b.WriteString(renderResult(m.result))
	}

	b.WriteString("\n")
	b.WriteString(renderMatches(m.matches, m.tabIdx, m.tabbing, m.width))
	b.WriteString("\n")

	return b.String()
}

func renderResult(r result) string {
	parts := make([]string, 0, len(r.tokens)+1)

	for i, tok := range r.tokens {
		parts = append(parts,
			indexStyle.Render(strconv.Itoa(i)+":")+tokenStyle.Render(strconv.Quote(tok)))
	}

	if r.err != nil {
		parts = append(parts, errorStyle.Render("error: "+r.err.Error()))
	}

	return strings.Join(parts, " ")
}

// renderMatches draws the suggestions on one line, cut with an ellipsis at
// width.
func renderMatches(matches fuzzy.Matches, selected int, tabbing bool, width int) string {
	const sep = "  "

	ellipsis := hintStyle.Render("...")

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderMatch(match, tabbing && i == selected)

		w := lipgloss.Width(rendered)
		if i > 0 {
			w += len(sep)
		}

		if i > 0 && used+w+lipgloss.Width(ellipsis) > width {
			b.WriteString(sep + ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += w
	}

	return b.String()
}

// renderMatch highlights the characters of match that the pattern hit.
func renderMatch(match fuzzy.Match, selected bool) string {
	if selected {
		return selectedStyle.Render(match.Str)
	}

	hit := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		hit[i] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if hit[i] {
			b.WriteString(matchHitStyle.Render(string(r)))
		} else {
			b.WriteString(matchStyle.Render(string(r)))
		}
	}

	return b.String()
}
