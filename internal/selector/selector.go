// Package selector runs one activation of the window selection overlay:
// query the focused workspace, show hints, wait for one key, act on it.
package selector

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/easyfocus/internal/core"
	"github.com/jmylchreest/easyfocus/internal/model"
)

// Directory returns the focused output, workspace and its ordered windows.
type Directory interface {
	Snapshot(ctx context.Context) (model.Snapshot, error)
}

// Commander issues window commands to the compositor.
type Commander interface {
	Focus(ctx context.Context, id int64) error
	Swap(ctx context.Context, id int64) error
}

// Surface shows hints on an output and blocks for a single key press.
// It returns the key name as reported by the toolkit. An empty name means the
// surface closed without a key.
type Surface interface {
	Await(ctx context.Context, output model.Output, hints []model.Hint) (string, error)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(ctx context.Context, output model.Output, hints []model.Hint) (string, error)

// Await calls f.
func (f SurfaceFunc) Await(ctx context.Context, output model.Output, hints []model.Hint) (string, error) {
	return f(ctx, output, hints)
}

// Action is what happens to the selected window.
type Action string

const (
	ActionFocus Action = "focus"
	ActionSwap  Action = "swap"
	ActionPrint Action = "print"
)

// ParseAction converts a string to an Action.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionFocus, ActionSwap, ActionPrint:
		return a, nil
	default:
		return "", fmt.Errorf("invalid action %q (must be focus, swap or print)", s)
	}
}

// Outcome describes how an activation ended.
type Outcome int

const (
	// OutcomeNoWindows means the workspace was empty and no overlay was shown.
	OutcomeNoWindows Outcome = iota
	// OutcomeNoSelection means the key did not identify a window.
	OutcomeNoSelection
	// OutcomeSelected means a window was selected and the action ran.
	OutcomeSelected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoWindows:
		return "no-windows"
	case OutcomeNoSelection:
		return "no-selection"
	case OutcomeSelected:
		return "selected"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the outcome of one activation.
type Result struct {
	Activation string
	Outcome    Outcome
	Key        string
	// Hint is set only when Outcome is OutcomeSelected.
	Hint *model.Hint
}

// Selector wires the selection engine to its collaborators.
type Selector struct {
	Directory Directory
	Commander Commander
	Surface   Surface
	Action    Action
	Margin    core.Margin
	Logger    *slog.Logger
	// Out receives the container id for ActionPrint. Defaults to stdout.
	Out io.Writer
}

// Run performs one activation. All state is discarded when it returns.
// Errors from the directory, the surface and the commander are returned
// unchanged in meaning; nothing is retried.
func (s *Selector) Run(ctx context.Context) (Result, error) {
	res := Result{Activation: ulid.Make().String()}

	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("activation", res.Activation)

	snap, err := s.Directory.Snapshot(ctx)
	if err != nil {
		return res, fmt.Errorf("query windows: %w", err)
	}

	logger.Debug("queried workspace",
		"output", snap.Output.Name,
		"workspace", snap.Workspace.Name,
		"windows", len(snap.Windows))

	if len(snap.Windows) == 0 {
		res.Outcome = OutcomeNoWindows
		return res, nil
	}

	hints := core.BuildHints(snap.Windows, snap.Output, s.Margin)

	key, err := s.Surface.Await(ctx, snap.Output, hints)
	if err != nil {
		if ctx.Err() != nil {
			logger.Debug("activation cancelled", "error", err)
			res.Outcome = OutcomeNoSelection
			return res, nil
		}
		return res, fmt.Errorf("overlay: %w", err)
	}
	res.Key = key

	index, ok := core.Resolve(key, len(hints))
	if !ok {
		logger.Debug("key selects nothing", "key", key)
		res.Outcome = OutcomeNoSelection
		return res, nil
	}

	hint := hints[index]
	logger.Debug("selected window",
		"label", hint.Label,
		"con_id", hint.Window.ID,
		"name", hint.Window.DisplayName())

	if err := s.act(ctx, hint.Window); err != nil {
		return res, fmt.Errorf("%s window %d: %w", s.action(), hint.Window.ID, err)
	}

	res.Outcome = OutcomeSelected
	res.Hint = &hint
	return res, nil
}

func (s *Selector) action() Action {
	if s.Action == "" {
		return ActionFocus
	}
	return s.Action
}

func (s *Selector) act(ctx context.Context, w model.Window) error {
	switch a := s.action(); a {
	case ActionFocus:
		return s.Commander.Focus(ctx, w.ID)
	case ActionSwap:
		return s.Commander.Swap(ctx, w.ID)
	case ActionPrint:
		out := s.Out
		if out == nil {
			out = os.Stdout
		}
		_, err := fmt.Fprintln(out, w.ID)
		return err
	default:
		return fmt.Errorf("unknown action %q", a)
	}
}
