package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/easyfocus/internal/config"
)

// overrideOpts holds flag values that override the config file.
// Only flags set on the command line are applied.
var overrideOpts struct {
	marginX, marginY   int
	paddingX, paddingY int

	windowBG, labelBG, focusedBG                string
	windowOpacity, labelOpacity, focusedOpacity float64
	labelFG, focusedFG                          string

	fontFamily, fontWeight, fontSize string

	theme, colorScheme string
	action, surface    string
	notify             bool
}

func registerOverrideFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	d := config.DefaultConfig()

	f.IntVar(&overrideOpts.marginX, "label-margin-x", d.Label.MarginX, "Horizontal label offset in pixels")
	f.IntVar(&overrideOpts.marginY, "label-margin-y", d.Label.MarginY, "Vertical label offset in pixels")
	f.IntVar(&overrideOpts.paddingX, "label-padding-x", d.Label.PaddingX, "Horizontal label padding in pixels")
	f.IntVar(&overrideOpts.paddingY, "label-padding-y", d.Label.PaddingY, "Vertical label padding in pixels")

	f.StringVar(&overrideOpts.windowBG, "window-background-color", d.Style.WindowBackgroundColor, "Overlay background color (hex)")
	f.Float64Var(&overrideOpts.windowOpacity, "window-background-opacity", d.Style.WindowBackgroundOpacity, "Overlay background opacity (0-1)")
	f.StringVar(&overrideOpts.labelBG, "label-background-color", d.Style.LabelBackgroundColor, "Label background color (hex)")
	f.Float64Var(&overrideOpts.labelOpacity, "label-background-opacity", d.Style.LabelBackgroundOpacity, "Label background opacity (0-1)")
	f.StringVar(&overrideOpts.labelFG, "label-text-color", d.Style.LabelTextColor, "Label text color (hex)")
	f.StringVar(&overrideOpts.focusedBG, "focused-background-color", d.Style.FocusedBackgroundColor, "Focused window label background color (hex)")
	f.Float64Var(&overrideOpts.focusedOpacity, "focused-background-opacity", d.Style.FocusedBackgroundOpacity, "Focused window label background opacity (0-1)")
	f.StringVar(&overrideOpts.focusedFG, "focused-text-color", d.Style.FocusedTextColor, "Focused window label text color (hex)")

	f.StringVar(&overrideOpts.fontFamily, "font-family", d.Style.FontFamily, "Label font family")
	f.StringVar(&overrideOpts.fontWeight, "font-weight", d.Style.FontWeight, "Label font weight")
	f.StringVar(&overrideOpts.fontSize, "font-size", d.Style.FontSize, "Label font size")

	f.StringVar(&overrideOpts.theme, "theme", d.Theme.Name, "Theme name")
	f.StringVar(&overrideOpts.colorScheme, "color-scheme", d.Theme.ColorScheme, "Color scheme (system, light, dark)")
	f.StringVar(&overrideOpts.action, "action", d.Behavior.Action, "What to do with the selected window (focus, swap, print)")
	f.StringVar(&overrideOpts.surface, "surface", d.Behavior.Surface, "Overlay surface (gtk, terminal, auto)")
	f.BoolVar(&overrideOpts.notify, "notify", d.Errors.Notify, "Send a desktop notification on failure")
}

// applyFlagOverrides copies explicitly set flags into cfg.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}

	set("label-margin-x", func() { cfg.Label.MarginX = overrideOpts.marginX })
	set("label-margin-y", func() { cfg.Label.MarginY = overrideOpts.marginY })
	set("label-padding-x", func() { cfg.Label.PaddingX = overrideOpts.paddingX })
	set("label-padding-y", func() { cfg.Label.PaddingY = overrideOpts.paddingY })

	set("window-background-color", func() { cfg.Style.WindowBackgroundColor = overrideOpts.windowBG })
	set("window-background-opacity", func() { cfg.Style.WindowBackgroundOpacity = overrideOpts.windowOpacity })
	set("label-background-color", func() { cfg.Style.LabelBackgroundColor = overrideOpts.labelBG })
	set("label-background-opacity", func() { cfg.Style.LabelBackgroundOpacity = overrideOpts.labelOpacity })
	set("label-text-color", func() { cfg.Style.LabelTextColor = overrideOpts.labelFG })
	set("focused-background-color", func() { cfg.Style.FocusedBackgroundColor = overrideOpts.focusedBG })
	set("focused-background-opacity", func() { cfg.Style.FocusedBackgroundOpacity = overrideOpts.focusedOpacity })
	set("focused-text-color", func() { cfg.Style.FocusedTextColor = overrideOpts.focusedFG })

	set("font-family", func() { cfg.Style.FontFamily = overrideOpts.fontFamily })
	set("font-weight", func() { cfg.Style.FontWeight = overrideOpts.fontWeight })
	set("font-size", func() { cfg.Style.FontSize = overrideOpts.fontSize })

	set("theme", func() { cfg.Theme.Name = overrideOpts.theme })
	set("color-scheme", func() { cfg.Theme.ColorScheme = overrideOpts.colorScheme })
	set("action", func() { cfg.Behavior.Action = overrideOpts.action })
	set("surface", func() { cfg.Behavior.Surface = overrideOpts.surface })
	set("notify", func() { cfg.Errors.Notify = overrideOpts.notify })
}
