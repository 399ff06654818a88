// Package tui provides a BubbleTea terminal surface for the hint prompt.
// It is used where no Wayland display is available.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/easyfocus/internal/model"
)

// Model is the hint prompt. It quits on the first key press.
type Model struct {
	output model.Output
	hints  []model.Hint
	styles Styles
	keys   KeyMap
	help   help.Model
	width  int

	key  string
	done bool
}

// New creates a prompt for hints on output.
func New(output model.Output, hints []model.Hint, styles Styles) Model {
	return Model{
		output: output,
		hints:  hints,
		styles: styles,
		keys:   DefaultKeyMap(len(hints)),
		help:   help.New(),
	}
}

// Init initializes the prompt.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.done {
			return m, nil
		}
		m.key = msg.String()
		m.done = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

// Key returns the name of the key that ended the prompt and whether one was pressed.
func (m Model) Key() (string, bool) {
	return m.key, m.done
}

// View renders the hint table.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(fmt.Sprintf("Windows on %s", m.output.Name)))
	b.WriteString("\n\n")

	for _, h := range m.hints {
		style := m.styles.Label
		if h.Window.Focused {
			style = m.styles.Focused
		}
		line := fmt.Sprintf("%s %s %s",
			style.Render(h.Label),
			truncate(h.Window.DisplayName(), m.nameWidth()),
			m.styles.Muted.Render(fmt.Sprintf("(%d,%d)", h.X, h.Y)),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) nameWidth() int {
	if m.width <= 0 {
		return 60
	}
	// Room for the label, coordinates and spacing.
	return max(m.width-24, 10)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
