package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings shown in the help line.
// Any key ends the prompt; only the bindings below are documented.
type KeyMap struct {
	Select key.Binding
	Cancel key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Cancel}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Select, k.Cancel}}
}

// DefaultKeyMap returns the key bindings for a prompt with n hints.
func DefaultKeyMap(n int) KeyMap {
	last := "z"
	if n > 0 && n < 26 {
		last = string(rune('a' + n - 1))
	}
	return KeyMap{
		Select: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a-"+last, "select window"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
