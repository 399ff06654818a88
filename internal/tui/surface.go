package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/easyfocus/internal/config"
	"github.com/jmylchreest/easyfocus/internal/model"
)

// Surface shows hints in the terminal and waits for one key.
type Surface struct {
	cfg    *config.Config
	logger *slog.Logger

	// Input and Output override the terminal; nil uses stdin/stdout.
	Input  io.Reader
	Output io.Writer
}

// NewSurface creates a terminal surface styled by cfg.
func NewSurface(cfg *config.Config, logger *slog.Logger) *Surface {
	if logger == nil {
		logger = slog.Default()
	}
	return &Surface{cfg: cfg, logger: logger}
}

// Await renders hints and returns the name of the first key pressed.
func (s *Surface) Await(ctx context.Context, output model.Output, hints []model.Hint) (string, error) {
	m := New(output, hints, NewStyles(s.cfg.Style, s.cfg.Label))

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if s.Input != nil {
		opts = append(opts, tea.WithInput(s.Input))
	}
	if s.Output != nil {
		opts = append(opts, tea.WithOutput(s.Output))
	} else {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return "", ctxErr
		}
		return "", err
	}

	key, ok := final.(Model).Key()
	if !ok {
		return "", nil
	}
	s.logger.Debug("key pressed", "key", key)
	return key, nil
}
