// Package overlay shows window hints on a GTK4/libadwaita layer-shell surface.
// The surface covers the focused output, takes the keyboard exclusively,
// and closes after the first key press.
package overlay
