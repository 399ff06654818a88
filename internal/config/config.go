// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultPaddingX          = 4
	DefaultWindowBackground  = "1d1f21"
	DefaultWindowOpacity     = 0.2
	DefaultLabelBackground   = "1d1f21"
	DefaultLabelText         = "c5c8c6"
	DefaultFocusedBackground = "285577"
	DefaultFocusedText       = "ffffff"
	DefaultFontFamily        = "monospace"
	DefaultFontWeight        = "bold"
	DefaultFontSize          = "medium"
	DefaultTheme             = "default"
)

// Config represents the easyfocus configuration.
type Config struct {
	Label    LabelConfig    `toml:"label"`
	Style    StyleConfig    `toml:"style"`
	Theme    ThemeConfig    `toml:"theme"`
	Behavior BehaviorConfig `toml:"behavior"`
	Errors   ErrorsConfig   `toml:"errors"`
}

// LabelConfig holds label placement in pixels.
type LabelConfig struct {
	MarginX  int `toml:"margin_x"`  // Horizontal offset from the window's left edge
	MarginY  int `toml:"margin_y"`  // Vertical offset into the decoration
	PaddingX int `toml:"padding_x"` // Label padding, left and right
	PaddingY int `toml:"padding_y"` // Label padding, top and bottom
}

// StyleConfig holds colors and fonts. Colors are 6-digit hex, with or
// without a leading '#'.
type StyleConfig struct {
	WindowBackgroundColor    string  `toml:"window_background_color"`
	WindowBackgroundOpacity  float64 `toml:"window_background_opacity"`
	LabelBackgroundColor     string  `toml:"label_background_color"`
	LabelBackgroundOpacity   float64 `toml:"label_background_opacity"`
	LabelTextColor           string  `toml:"label_text_color"`
	FocusedBackgroundColor   string  `toml:"focused_background_color"`
	FocusedBackgroundOpacity float64 `toml:"focused_background_opacity"`
	FocusedTextColor         string  `toml:"focused_text_color"`
	FontFamily               string  `toml:"font_family"`
	FontWeight               string  `toml:"font_weight"`
	FontSize                 string  `toml:"font_size"`
}

// ThemeConfig contains theme settings.
type ThemeConfig struct {
	Name        string `toml:"name"`         // Theme name without .css extension
	ColorScheme string `toml:"color_scheme"` // "system", "light", or "dark"
}

// BehaviorConfig controls what an activation does.
type BehaviorConfig struct {
	Action  string `toml:"action"`  // "focus", "swap", or "print"
	Surface string `toml:"surface"` // "gtk", "terminal", or "auto"
}

// ErrorsConfig controls how fatal errors are surfaced.
type ErrorsConfig struct {
	Notify bool `toml:"notify"` // Send a desktop notification on failure
}

// ColorScheme represents the color scheme preference.
type ColorScheme string

const (
	ColorSchemeSystem ColorScheme = "system"
	ColorSchemeLight  ColorScheme = "light"
	ColorSchemeDark   ColorScheme = "dark"
)

// ValidColorSchemes returns all valid color scheme values.
func ValidColorSchemes() []ColorScheme {
	return []ColorScheme{ColorSchemeSystem, ColorSchemeLight, ColorSchemeDark}
}

// Surface selects the overlay implementation.
type Surface string

const (
	SurfaceGTK      Surface = "gtk"
	SurfaceTerminal Surface = "terminal"
	SurfaceAuto     Surface = "auto"
)

// ValidSurfaces returns all valid surface values.
func ValidSurfaces() []Surface {
	return []Surface{SurfaceGTK, SurfaceTerminal, SurfaceAuto}
}

// ValidActions returns all valid action values.
func ValidActions() []string {
	return []string{"focus", "swap", "print"}
}

var fontWeights = []string{"normal", "bold", "bolder", "lighter"}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Label: LabelConfig{
			PaddingX: DefaultPaddingX,
		},
		Style: StyleConfig{
			WindowBackgroundColor:    DefaultWindowBackground,
			WindowBackgroundOpacity:  DefaultWindowOpacity,
			LabelBackgroundColor:     DefaultLabelBackground,
			LabelBackgroundOpacity:   1.0,
			LabelTextColor:           DefaultLabelText,
			FocusedBackgroundColor:   DefaultFocusedBackground,
			FocusedBackgroundOpacity: 1.0,
			FocusedTextColor:         DefaultFocusedText,
			FontFamily:               DefaultFontFamily,
			FontWeight:               DefaultFontWeight,
			FontSize:                 DefaultFontSize,
		},
		Theme: ThemeConfig{
			Name:        DefaultTheme,
			ColorScheme: string(ColorSchemeSystem),
		},
		Behavior: BehaviorConfig{
			Action:  "focus",
			Surface: string(SurfaceAuto),
		},
		Errors: ErrorsConfig{
			Notify: true,
		},
	}
}

// Dir returns the easyfocus configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise the platform user config dir.
func Dir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		var err error
		configHome, err = os.UserConfigDir()
		if err != nil {
			return ""
		}
	}
	return filepath.Join(configHome, "easyfocus")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// ThemesDir returns the directory holding user theme overrides.
func ThemesDir() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "themes")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	path = expandPath(path)

	// Start with defaults, then overlay with file contents
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}
	path = expandPath(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write atomically via temp file
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Rename(tmpPath, path)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	colors := []struct {
		key, value string
	}{
		{"window_background_color", c.Style.WindowBackgroundColor},
		{"label_background_color", c.Style.LabelBackgroundColor},
		{"label_text_color", c.Style.LabelTextColor},
		{"focused_background_color", c.Style.FocusedBackgroundColor},
		{"focused_text_color", c.Style.FocusedTextColor},
	}
	for _, col := range colors {
		if !ValidHexColor(col.value) {
			return fmt.Errorf("%s must be a 6-digit hex color, got %q", col.key, col.value)
		}
	}

	opacities := []struct {
		key   string
		value float64
	}{
		{"window_background_opacity", c.Style.WindowBackgroundOpacity},
		{"label_background_opacity", c.Style.LabelBackgroundOpacity},
		{"focused_background_opacity", c.Style.FocusedBackgroundOpacity},
	}
	for _, op := range opacities {
		if op.value < 0 || op.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %g", op.key, op.value)
		}
	}

	if c.Label.PaddingX < 0 || c.Label.PaddingY < 0 {
		return fmt.Errorf("label padding must not be negative, got %d,%d", c.Label.PaddingX, c.Label.PaddingY)
	}

	if !validFontWeight(c.Style.FontWeight) {
		return fmt.Errorf("invalid font_weight %q, must be one of %v or 100-900", c.Style.FontWeight, fontWeights)
	}
	if strings.TrimSpace(c.Style.FontFamily) == "" {
		return errors.New("font_family must not be empty")
	}
	if strings.TrimSpace(c.Style.FontSize) == "" {
		return errors.New("font_size must not be empty")
	}

	if !slices.Contains(ValidColorSchemes(), ColorScheme(c.Theme.ColorScheme)) {
		return fmt.Errorf("invalid color_scheme %q, must be one of: %v", c.Theme.ColorScheme, ValidColorSchemes())
	}
	if c.Theme.Name == "" || strings.ContainsAny(c.Theme.Name, `/\`) {
		return fmt.Errorf("invalid theme name %q", c.Theme.Name)
	}

	if !slices.Contains(ValidActions(), c.Behavior.Action) {
		return fmt.Errorf("invalid action %q, must be one of: %v", c.Behavior.Action, ValidActions())
	}
	if !slices.Contains(ValidSurfaces(), Surface(c.Behavior.Surface)) {
		return fmt.Errorf("invalid surface %q, must be one of: %v", c.Behavior.Surface, ValidSurfaces())
	}

	return nil
}

// ValidHexColor reports whether s is a 6-digit hex color, optionally prefixed by '#'.
func ValidHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}

func validFontWeight(w string) bool {
	if slices.Contains(fontWeights, w) {
		return true
	}
	n, err := strconv.Atoi(w)
	return err == nil && n >= 100 && n <= 900 && n%100 == 0
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
