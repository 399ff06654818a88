// Package model defines the core data structures for easyfocus.
package model

import "fmt"

// Rect is a position and size in pixels.
// Coordinates may be negative; sizes are never negative for well-formed data.
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Valid reports whether the rectangle has a non-negative size.
func (r Rect) Valid() bool {
	return r.Width >= 0 && r.Height >= 0
}

// String returns the rectangle as "WxH+X+Y".
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d%+d%+d", r.Width, r.Height, r.X, r.Y)
}

// Output is a display region with an origin in the global coordinate space.
type Output struct {
	Name string `json:"name" yaml:"name"`
	Rect Rect   `json:"rect" yaml:"rect"`
}

// Workspace is the set of windows currently shown on one output.
type Workspace struct {
	Name   string `json:"name" yaml:"name"`
	Num    int    `json:"num" yaml:"num"`
	Output string `json:"output" yaml:"output"`
}

// Window is a focusable leaf container.
type Window struct {
	// ID is the compositor container id, used to address the window in commands.
	// It is only valid for the lifetime of one activation.
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	AppID string `json:"app_id,omitempty" yaml:"app_id,omitempty"`

	// Rect is the container in global coordinates.
	Rect Rect `json:"rect" yaml:"rect"`
	// WindowRect is the content area relative to Rect.
	WindowRect Rect `json:"window_rect" yaml:"window_rect"`
	// DecoRect is the decoration (titlebar/border) relative to Rect.
	DecoRect Rect `json:"deco_rect" yaml:"deco_rect"`

	Focused bool `json:"focused" yaml:"focused"`
}

// DisplayName returns the best human-readable name for the window.
func (w Window) DisplayName() string {
	switch {
	case w.Name != "":
		return w.Name
	case w.AppID != "":
		return w.AppID
	default:
		return fmt.Sprintf("con_id %d", w.ID)
	}
}

// Hint correlates a window with its label and label position.
// Index is the window's position in the ordered window list and is the only
// correlation key between the three.
type Hint struct {
	Index  int    `json:"index" yaml:"index"`
	Label  string `json:"label" yaml:"label"`
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Window Window `json:"window" yaml:"window"`
}

// Snapshot is the result of one directory query.
type Snapshot struct {
	Output    Output    `json:"output" yaml:"output"`
	Workspace Workspace `json:"workspace" yaml:"workspace"`
	Windows   []Window  `json:"windows" yaml:"windows"`
}
