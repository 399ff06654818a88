package core

import "github.com/jmylchreest/easyfocus/internal/model"

// BuildHints builds the label and position for every window, in list order.
// The returned slice is indexed exactly like windows.
func BuildHints(windows []model.Window, output model.Output, margin Margin) []model.Hint {
	hints := make([]model.Hint, len(windows))
	for i, w := range windows {
		x, y := Position(w, output, margin)
		hints[i] = model.Hint{
			Index:  i,
			Label:  Label(i),
			X:      x,
			Y:      y,
			Window: w,
		}
	}
	return hints
}
