package selector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/easyfocus/internal/core"
	"github.com/jmylchreest/easyfocus/internal/model"
)

type fakeDirectory struct {
	snap  model.Snapshot
	err   error
	calls int
}

func (d *fakeDirectory) Snapshot(context.Context) (model.Snapshot, error) {
	d.calls++
	return d.snap, d.err
}

type fakeCommander struct {
	focused []int64
	swapped []int64
	err     error
}

func (c *fakeCommander) Focus(_ context.Context, id int64) error {
	c.focused = append(c.focused, id)
	return c.err
}

func (c *fakeCommander) Swap(_ context.Context, id int64) error {
	c.swapped = append(c.swapped, id)
	return c.err
}

type fakeSurface struct {
	key   string
	err   error
	calls int
	hints []model.Hint
}

func (s *fakeSurface) Await(_ context.Context, _ model.Output, hints []model.Hint) (string, error) {
	s.calls++
	s.hints = hints
	return s.key, s.err
}

func windows(n int) []model.Window {
	ws := make([]model.Window, n)
	for i := range ws {
		ws[i] = model.Window{
			ID:       int64(100 + i),
			Name:     fmt.Sprintf("window %d", i),
			Rect:     model.Rect{X: 100 * i, Y: 30, Width: 100, Height: 100},
			DecoRect: model.Rect{Width: 100, Height: 20},
		}
	}
	return ws
}

func snapshot(n int) model.Snapshot {
	return model.Snapshot{
		Output:    model.Output{Name: "eDP-1", Rect: model.Rect{Width: 1920, Height: 1080}},
		Workspace: model.Workspace{Name: "1", Num: 1, Output: "eDP-1"},
		Windows:   windows(n),
	}
}

func TestRun_NoWindowsSkipsSurface(t *testing.T) {
	dir := &fakeDirectory{snap: snapshot(0)}
	cmd := &fakeCommander{}
	surf := &fakeSurface{key: "a"}
	s := &Selector{Directory: dir, Commander: cmd, Surface: surf}

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoWindows, res.Outcome)
	assert.Zero(t, surf.calls)
	assert.Empty(t, cmd.focused)
	assert.Equal(t, 1, dir.calls)
}

func TestRun_FocusesSelectedWindow(t *testing.T) {
	dir := &fakeDirectory{snap: snapshot(3)}
	cmd := &fakeCommander{}
	surf := &fakeSurface{key: "b"}
	s := &Selector{Directory: dir, Commander: cmd, Surface: surf}

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeSelected, res.Outcome)
	assert.Equal(t, "b", res.Key)
	require.NotNil(t, res.Hint)
	assert.Equal(t, 1, res.Hint.Index)
	assert.Equal(t, []int64{101}, cmd.focused)
	assert.Empty(t, cmd.swapped)
	assert.NotEmpty(t, res.Activation)
}

func TestRun_HintsMatchWindows(t *testing.T) {
	dir := &fakeDirectory{snap: snapshot(3)}
	surf := &fakeSurface{key: "Escape"}
	s := &Selector{Directory: dir, Commander: &fakeCommander{}, Surface: surf, Margin: core.Margin{X: 5, Y: 5}}

	_, err := s.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, surf.hints, 3)
	for i, h := range surf.hints {
		assert.Equal(t, i, h.Index)
		assert.Equal(t, core.Label(i), h.Label)
		assert.Equal(t, int64(100+i), h.Window.ID)
	}
	// 30 - (20 - 5)
	assert.Equal(t, 15, surf.hints[0].Y)
	assert.Equal(t, 105, surf.hints[1].X)
}

func TestRun_KeysThatSelectNothing(t *testing.T) {
	tests := []struct {
		name string
		n    int
		key  string
	}{
		{"escape", 3, "Escape"},
		{"uppercase", 3, "A"},
		{"digit", 3, "1"},
		{"past end", 3, "d"},
		{"empty", 3, ""},
		{"multibyte", 3, "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &fakeCommander{}
			s := &Selector{
				Directory: &fakeDirectory{snap: snapshot(tt.n)},
				Commander: cmd,
				Surface:   &fakeSurface{key: tt.key},
			}

			res, err := s.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, OutcomeNoSelection, res.Outcome)
			assert.Nil(t, res.Hint)
			assert.Empty(t, cmd.focused)
		})
	}
}

func TestRun_WrappedLabelsSelectFirstWindow(t *testing.T) {
	cmd := &fakeCommander{}
	surf := &fakeSurface{key: "a"}
	s := &Selector{Directory: &fakeDirectory{snap: snapshot(27)}, Commander: cmd, Surface: surf}

	res, err := s.Run(context.Background())
	require.NoError(t, err)

	// The 27th window is also labelled "a" but is unreachable.
	assert.Equal(t, "a", surf.hints[26].Label)
	assert.Equal(t, OutcomeSelected, res.Outcome)
	assert.Equal(t, []int64{100}, cmd.focused)
}

func TestRun_Actions(t *testing.T) {
	t.Run("swap", func(t *testing.T) {
		cmd := &fakeCommander{}
		s := &Selector{
			Directory: &fakeDirectory{snap: snapshot(2)},
			Commander: cmd,
			Surface:   &fakeSurface{key: "a"},
			Action:    ActionSwap,
		}

		_, err := s.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []int64{100}, cmd.swapped)
		assert.Empty(t, cmd.focused)
	})

	t.Run("print", func(t *testing.T) {
		cmd := &fakeCommander{}
		var out bytes.Buffer
		s := &Selector{
			Directory: &fakeDirectory{snap: snapshot(2)},
			Commander: cmd,
			Surface:   &fakeSurface{key: "b"},
			Action:    ActionPrint,
			Out:       &out,
		}

		res, err := s.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, OutcomeSelected, res.Outcome)
		assert.Equal(t, "101\n", out.String())
		assert.Empty(t, cmd.focused)
		assert.Empty(t, cmd.swapped)
	})
}

func TestRun_Errors(t *testing.T) {
	ipcErr := errors.New("broken pipe")

	t.Run("directory", func(t *testing.T) {
		surf := &fakeSurface{key: "a"}
		s := &Selector{Directory: &fakeDirectory{err: ipcErr}, Commander: &fakeCommander{}, Surface: surf}

		_, err := s.Run(context.Background())
		require.ErrorIs(t, err, ipcErr)
		assert.Zero(t, surf.calls)
	})

	t.Run("surface", func(t *testing.T) {
		cmd := &fakeCommander{}
		s := &Selector{Directory: &fakeDirectory{snap: snapshot(2)}, Commander: cmd, Surface: &fakeSurface{err: ipcErr}}

		_, err := s.Run(context.Background())
		require.ErrorIs(t, err, ipcErr)
		assert.Empty(t, cmd.focused)
	})

	t.Run("command is attempted once", func(t *testing.T) {
		cmd := &fakeCommander{err: ipcErr}
		s := &Selector{Directory: &fakeDirectory{snap: snapshot(2)}, Commander: cmd, Surface: &fakeSurface{key: "a"}}

		_, err := s.Run(context.Background())
		require.ErrorIs(t, err, ipcErr)
		assert.Len(t, cmd.focused, 1)
	})
}

func TestRun_CancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cmd := &fakeCommander{}
	surf := SurfaceFunc(func(ctx context.Context, _ model.Output, _ []model.Hint) (string, error) {
		cancel()
		return "", ctx.Err()
	})
	s := &Selector{Directory: &fakeDirectory{snap: snapshot(2)}, Commander: cmd, Surface: surf}

	res, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoSelection, res.Outcome)
	assert.Empty(t, cmd.focused)
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"focus", "swap", "print"} {
		a, err := ParseAction(s)
		require.NoError(t, err)
		assert.Equal(t, Action(s), a)
	}

	_, err := ParseAction("kill")
	assert.Error(t, err)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "no-windows", OutcomeNoWindows.String())
	assert.Equal(t, "no-selection", OutcomeNoSelection.String())
	assert.Equal(t, "selected", OutcomeSelected.String())
}
