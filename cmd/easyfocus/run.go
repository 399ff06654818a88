package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/easyfocus/internal/config"
	"github.com/jmylchreest/easyfocus/internal/core"
	"github.com/jmylchreest/easyfocus/internal/notify"
	"github.com/jmylchreest/easyfocus/internal/overlay"
	"github.com/jmylchreest/easyfocus/internal/selector"
	"github.com/jmylchreest/easyfocus/internal/sway"
	"github.com/jmylchreest/easyfocus/internal/tui"
)

// runActivation shows the overlay once and acts on the selected window.
func runActivation(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	err := activate(ctx)
	if err != nil && cfg.Errors.Notify {
		notifyError(ctx, err)
	}
	return err
}

func activate(ctx context.Context) error {
	client, err := sway.Connect(ctx, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to compositor: %w", err)
	}
	defer func() { _ = client.Close() }()

	action, err := selector.ParseAction(cfg.Behavior.Action)
	if err != nil {
		return err
	}

	s := &selector.Selector{
		Directory: sway.NewDirectory(client, logger),
		Commander: sway.NewCommander(client),
		Surface:   newSurface(cfg, logger),
		Action:    action,
		Margin:    core.Margin{X: cfg.Label.MarginX, Y: cfg.Label.MarginY},
		Logger:    logger,
		Out:       os.Stdout,
	}

	res, err := s.Run(ctx)
	if err != nil {
		return err
	}

	logger.Debug("activation finished",
		"activation", res.Activation,
		"outcome", res.Outcome.String(),
		"key", res.Key,
	)
	return nil
}

// surfaceKind resolves "auto" to a concrete surface.
func surfaceKind(setting string, wayland bool) config.Surface {
	switch s := config.Surface(setting); s {
	case config.SurfaceGTK, config.SurfaceTerminal:
		return s
	default:
		if wayland {
			return config.SurfaceGTK
		}
		return config.SurfaceTerminal
	}
}

func newSurface(cfg *config.Config, logger *slog.Logger) selector.Surface {
	kind := surfaceKind(cfg.Behavior.Surface, os.Getenv("WAYLAND_DISPLAY") != "")
	logger.Debug("using surface", "surface", string(kind))

	if kind == config.SurfaceTerminal {
		return tui.NewSurface(cfg, logger)
	}
	return overlay.New(cfg, config.ThemesDir(), logger)
}

func notifyError(ctx context.Context, err error) {
	n, connErr := notify.New(logger)
	if connErr != nil {
		logger.Warn("cannot send error notification", "error", connErr)
		return
	}
	n.Error(ctx, "easyfocus failed", err)
}
