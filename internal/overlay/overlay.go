package overlay

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/easyfocus/internal/config"
	"github.com/jmylchreest/easyfocus/internal/model"
	"github.com/jmylchreest/easyfocus/internal/theme"
)

const (
	// AppID is the application id registered with GTK.
	AppID = "io.github.jmylchreest.easyfocus"
	// Namespace is the layer-shell namespace, usable in compositor rules.
	Namespace = "easyfocus"
)

// Overlay is a GTK surface for one activation.
// Await must be called from the main OS thread.
type Overlay struct {
	cfg       *config.Config
	themesDir string
	logger    *slog.Logger
}

// New creates an overlay styled by cfg. themesDir may be empty.
func New(cfg *config.Config, themesDir string, logger *slog.Logger) *Overlay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Overlay{
		cfg:       cfg,
		themesDir: themesDir,
		logger:    logger,
	}
}

// Await shows hints on output and returns the name of the first key pressed.
// It returns an empty name if the window closes without a key, and ctx.Err()
// if ctx is cancelled first.
func (o *Overlay) Await(ctx context.Context, output model.Output, hints []model.Hint) (string, error) {
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		return "", &DisplayError{Message: "WAYLAND_DISPLAY is not set"}
	}

	app := adw.NewApplication(AppID, gio.ApplicationNonUnique)

	var (
		key    firstKey
		runErr error
	)

	app.ConnectActivate(func() {
		if !layershell.IsSupported() {
			runErr = &DisplayError{Message: "compositor does not support wlr-layer-shell"}
			app.Quit()
			return
		}

		loader := theme.NewLoader(o.cfg, o.themesDir, o.logger)
		if err := loader.Apply(gdk.DisplayGetDefault()); err != nil {
			runErr = &DisplayError{Message: "failed to load stylesheet", Cause: err}
			app.Quit()
			return
		}

		win := o.buildWindow(&app.Application, output, hints, func(name string) {
			if key.accept(name) {
				o.logger.Debug("key pressed", "key", name)
				app.Quit()
			}
		})
		win.Present()
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			glib.IdleAdd(func() {
				app.Quit()
			})
		case <-done:
		}
	}()

	// GTK must not parse our command line.
	status := app.Run([]string{os.Args[0]})

	if runErr != nil {
		return "", runErr
	}
	if status != 0 {
		return "", &DisplayError{Message: "application exited with status " + strconv.Itoa(status)}
	}
	if key.got {
		return key.name, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", nil
}

// buildWindow creates the full-output layer surface holding one label per hint.
func (o *Overlay) buildWindow(app *gtk.Application, output model.Output, hints []model.Hint, onKey func(string)) *gtk.Window {
	win := gtk.NewWindow()
	win.SetApplication(app)
	win.SetDecorated(false)
	win.AddCSSClass(classWindow)
	win.AddCSSClass(colorSchemeClass(o.cfg.Theme.ColorScheme, o.systemDark()))

	layershell.InitForWindow(win)
	layershell.SetLayer(win, layershell.LayerShellLayerOverlay)
	layershell.SetKeyboardMode(win, layershell.LayerShellKeyboardModeExclusive)
	layershell.SetExclusiveZone(win, -1)
	layershell.SetNamespace(win, Namespace)
	for _, edge := range []layershell.LayerShellEdge{
		layershell.LayerShellEdgeLeft,
		layershell.LayerShellEdgeRight,
		layershell.LayerShellEdgeTop,
		layershell.LayerShellEdgeBottom,
	} {
		layershell.SetAnchor(win, edge, true)
	}

	if monitor := findMonitor(gdk.DisplayGetDefault(), output.Name, o.logger); monitor != nil {
		layershell.SetMonitor(win, monitor)
	}

	fixed := gtk.NewFixed()
	for _, h := range hints {
		label := gtk.NewLabel(h.Label)
		for _, class := range hintClasses(h) {
			label.AddCSSClass(class)
		}
		label.SetTooltipText(h.Window.DisplayName())
		fixed.Put(label, float64(h.X), float64(h.Y))
	}
	win.SetChild(fixed)

	keys := gtk.NewEventControllerKey()
	keys.ConnectKeyPressed(func(keyval, keycode uint, state gdk.ModifierType) bool {
		onKey(gdk.KeyvalName(keyval))
		return true
	})
	win.AddController(keys)

	o.logger.Debug("built overlay",
		"output", output.Name,
		"hints", len(hints),
	)
	return win
}

// systemDark reports the libadwaita dark preference and forces the style
// manager to follow an explicit scheme.
func (o *Overlay) systemDark() bool {
	sm := adw.StyleManagerGetDefault()
	switch config.ColorScheme(o.cfg.Theme.ColorScheme) {
	case config.ColorSchemeDark:
		sm.SetColorScheme(adw.ColorSchemeForceDark)
	case config.ColorSchemeLight:
		sm.SetColorScheme(adw.ColorSchemeForceLight)
	}
	return sm.Dark()
}
