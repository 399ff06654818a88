package sway

import "errors"

var (
	// ErrNoFocusedOutput is returned when the tree has no focused output.
	ErrNoFocusedOutput = errors.New("no focused output")
	// ErrNoFocusedWorkspace is returned when the focused output has no focused workspace.
	ErrNoFocusedWorkspace = errors.New("no focused workspace")
	// ErrNoSocket is returned when no IPC socket path can be found.
	ErrNoSocket = errors.New("no IPC socket: neither SWAYSOCK nor I3SOCK is set")
)

// IPCError represents a failed IPC exchange or an unsuccessful command.
type IPCError struct {
	Op      string
	Message string
	Err     error
}

func (e *IPCError) Error() string {
	msg := "ipc " + e.Op
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *IPCError) Unwrap() error {
	return e.Err
}
