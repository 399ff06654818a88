package sway

import "os"

// SocketPath locates the compositor IPC socket from $SWAYSOCK, then $I3SOCK.
func SocketPath() (string, error) {
	for _, env := range []string{"SWAYSOCK", "I3SOCK"} {
		if path := os.Getenv(env); path != "" {
			return path, nil
		}
	}
	return "", ErrNoSocket
}
