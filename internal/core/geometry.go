package core

import (
	"fmt"

	"github.com/jmylchreest/easyfocus/internal/model"
)

// Margin is the configured label offset in pixels.
type Margin struct {
	X int
	Y int
}

// Position returns the label anchor for a window, relative to the output origin.
//
// The label sits just above the window decoration. Overlapping or stacked
// windows get colliding positions; no occlusion handling is done.
//
// Malformed rectangles are a precondition violation and panic.
func Position(w model.Window, output model.Output, margin Margin) (int, int) {
	for _, r := range []model.Rect{w.Rect, w.WindowRect, w.DecoRect} {
		if !r.Valid() {
			panic(fmt.Sprintf("core: malformed geometry for window %d: %s", w.ID, r))
		}
	}

	relX := w.Rect.X + w.WindowRect.X + w.DecoRect.X + margin.X
	relY := w.Rect.Y - (w.DecoRect.Height - margin.Y)

	return relX - output.Rect.X, relY - output.Rect.Y
}
