package theme

import (
	"log/slog"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/easyfocus/internal/config"
)

// Loader builds the stylesheet and installs it for a GTK display.
type Loader struct {
	logger    *slog.Logger
	cfg       *config.Config
	themesDir string
	provider  *gtk.CSSProvider
	theme     *Theme
}

// NewLoader creates a loader for cfg. themesDir may be empty to use only
// bundled themes.
func NewLoader(cfg *config.Config, themesDir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:    logger,
		cfg:       cfg,
		themesDir: themesDir,
	}
}

// CSS resolves the configured theme and returns the full stylesheet.
// An unknown theme falls back to the default one with a warning.
func (l *Loader) CSS() (string, error) {
	t, err := Resolve(l.cfg.Theme.Name, l.themesDir)
	if err != nil {
		l.logger.Warn("theme unavailable, using default", "theme", l.cfg.Theme.Name, "error", err)
		t, err = Resolve(DefaultThemeName, "")
		if err != nil {
			return "", err
		}
	}
	l.theme = t

	l.logger.Debug("resolved theme", "name", t.Name, "bundled", t.Bundled, "path", t.Path)
	return Stylesheet(l.cfg.Style, l.cfg.Label, t)
}

// Apply loads the stylesheet into a CSS provider for display.
// It must run on the GTK main thread after the application has started.
func (l *Loader) Apply(display *gdk.Display) error {
	css, err := l.CSS()
	if err != nil {
		return err
	}

	if display == nil {
		display = gdk.DisplayGetDefault()
	}
	if display == nil {
		l.logger.Warn("no display available, cannot apply theme")
		return nil
	}

	if l.provider == nil {
		l.provider = gtk.NewCSSProvider()
	}
	l.provider.LoadFromString(css)

	gtk.StyleContextAddProviderForDisplay(
		display,
		l.provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
	l.logger.Debug("applied theme to display", "name", l.theme.Name)
	return nil
}

// Theme returns the theme resolved by the last CSS or Apply call.
func (l *Loader) Theme() *Theme {
	return l.theme
}
