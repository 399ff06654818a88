package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/easyfocus/internal/config"
)

// Styles holds the lipgloss styles for the hint table.
type Styles struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles derives styles from the overlay style configuration so both
// surfaces look alike.
func NewStyles(style config.StyleConfig, label config.LabelConfig) Styles {
	base := lipgloss.NewStyle().
		Padding(label.PaddingY, label.PaddingX).
		Bold(isBold(style.FontWeight))

	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		Label: base.
			Background(hexColor(style.LabelBackgroundColor)).
			Foreground(hexColor(style.LabelTextColor)),
		Focused: base.
			Background(hexColor(style.FocusedBackgroundColor)).
			Foreground(hexColor(style.FocusedTextColor)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
	}
}

func hexColor(hex string) lipgloss.Color {
	return lipgloss.Color("#" + strings.TrimPrefix(hex, "#"))
}

func isBold(weight string) bool {
	switch weight {
	case "bold", "bolder", "600", "700", "800", "900":
		return true
	}
	return false
}
