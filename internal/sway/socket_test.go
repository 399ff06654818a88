package sway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocketPath_Env(t *testing.T) {
	tests := []struct {
		name     string
		swaysock string
		i3sock   string
		want     string
	}{
		{"sway only", "/run/user/1000/sway-ipc.sock", "", "/run/user/1000/sway-ipc.sock"},
		{"i3 only", "", "/run/user/1000/i3/ipc-socket.1", "/run/user/1000/i3/ipc-socket.1"},
		{"sway wins", "/tmp/sway.sock", "/tmp/i3.sock", "/tmp/sway.sock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SWAYSOCK", tt.swaysock)
			t.Setenv("I3SOCK", tt.i3sock)

			got, err := SocketPath()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSocketPath_NotFound(t *testing.T) {
	t.Setenv("SWAYSOCK", "")
	t.Setenv("I3SOCK", "")

	_, err := SocketPath()
	assert.ErrorIs(t, err, ErrNoSocket)
}
