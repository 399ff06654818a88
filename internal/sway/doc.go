// Package sway adapts the i3/sway IPC client to easyfocus: it reads the
// layout tree to find the windows on the focused workspace, and runs focus
// and swap commands against a window's container id.
package sway
