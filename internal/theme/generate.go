package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/easyfocus/internal/config"
)

// Named colors defined by the generated block. Themes refer to them as
// @easyfocus_label_bg and so on.
const (
	ColorWindowBackground  = "easyfocus_window_bg"
	ColorLabelBackground   = "easyfocus_label_bg"
	ColorLabelText         = "easyfocus_label_fg"
	ColorFocusedBackground = "easyfocus_focused_bg"
	ColorFocusedText       = "easyfocus_focused_fg"
)

// Generate turns the style and label configuration into CSS: a block of
// @define-color rules and the base window and hint rules.
func Generate(style config.StyleConfig, label config.LabelConfig) (string, error) {
	colors := []struct {
		name    string
		hex     string
		opacity float64
	}{
		{ColorWindowBackground, style.WindowBackgroundColor, style.WindowBackgroundOpacity},
		{ColorLabelBackground, style.LabelBackgroundColor, style.LabelBackgroundOpacity},
		{ColorLabelText, style.LabelTextColor, 1},
		{ColorFocusedBackground, style.FocusedBackgroundColor, style.FocusedBackgroundOpacity},
		{ColorFocusedText, style.FocusedTextColor, 1},
	}

	var b strings.Builder
	for _, c := range colors {
		rgba, err := RGBA(c.hex, c.opacity)
		if err != nil {
			return "", fmt.Errorf("%s: %w", c.name, err)
		}
		fmt.Fprintf(&b, "@define-color %s %s;\n", c.name, rgba)
	}

	fmt.Fprintf(&b, `
window.easyfocus {
  background-color: @%s;
}

label.hint {
  padding: %dpx %dpx;
  font-family: %s;
  font-weight: %s;
  font-size: %s;
}
`, ColorWindowBackground, label.PaddingY, label.PaddingX, style.FontFamily, style.FontWeight, style.FontSize)

	return b.String(), nil
}

// Stylesheet returns the generated block followed by the theme.
func Stylesheet(style config.StyleConfig, label config.LabelConfig, t *Theme) (string, error) {
	generated, err := Generate(style, label)
	if err != nil {
		return "", err
	}
	if t == nil {
		return generated, nil
	}
	return generated + "\n/* theme: " + t.Name + " */\n" + t.CSS, nil
}

// RGBA converts a 6-digit hex color, with or without '#', and an opacity
// into a CSS rgba() value.
func RGBA(hex string, opacity float64) (string, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return "", fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := v>>16&0xff, v>>8&0xff, v&0xff
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(opacity, 'f', -1, 64)), nil
}
