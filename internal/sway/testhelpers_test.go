package sway

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"io"
	"net"
	"path/filepath"
	"sync"
	"testing"

	swayipc "github.com/joshuarubin/go-sway"
	"github.com/stretchr/testify/require"
)

// fakeConn answers IPC calls from canned JSON and records commands.
type fakeConn struct {
	tree    string
	version string
	replies string
	err     error

	mu       sync.Mutex
	calls    []string
	commands []string
}

func (f *fakeConn) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeConn) GetTree(ctx context.Context) (*swayipc.Node, error) {
	f.record("get_tree")
	if f.err != nil {
		return nil, f.err
	}
	var root swayipc.Node
	if err := json.Unmarshal([]byte(f.tree), &root); err != nil {
		return nil, err
	}
	return &root, nil
}

func (f *fakeConn) GetVersion(ctx context.Context) (*swayipc.Version, error) {
	f.record("get_version")
	if f.err != nil {
		return nil, f.err
	}
	var v swayipc.Version
	if err := json.Unmarshal([]byte(f.version), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (f *fakeConn) RunCommand(ctx context.Context, command string) ([]swayipc.RunCommandReply, error) {
	f.record("run_command")
	f.mu.Lock()
	f.commands = append(f.commands, command)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var replies []swayipc.RunCommandReply
	if err := json.Unmarshal([]byte(f.replies), &replies); err != nil {
		return nil, err
	}
	return replies, nil
}

func (f *fakeConn) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeConn) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.commands...)
}

// IPC message types used by the socket server below.
const (
	msgRunCommand uint32 = 0
	msgGetTree    uint32 = 4
	msgGetVersion uint32 = 7
)

// fakeServer is an in-process IPC socket answering every request with handler.
type fakeServer struct {
	path string

	mu    sync.Mutex
	types []uint32
}

func newFakeServer(t *testing.T, handler func(msgType uint32, payload []byte) []byte) *fakeServer {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ipc.sock")
	l, err := net.Listen("unix", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	s := &fakeServer{path: path}
	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			go s.serve(conn, handler)
		}
	}()
	return s
}

func (s *fakeServer) serve(conn net.Conn, handler func(uint32, []byte) []byte) {
	defer func() { _ = conn.Close() }()
	header := make([]byte, 14)
	for {
		if _, err := io.ReadFull(conn, header); err != nil {
			return
		}
		msgType := binary.LittleEndian.Uint32(header[10:14])
		payload := make([]byte, binary.LittleEndian.Uint32(header[6:10]))
		if _, err := io.ReadFull(conn, payload); err != nil {
			return
		}

		s.mu.Lock()
		s.types = append(s.types, msgType)
		s.mu.Unlock()

		reply := handler(msgType, payload)
		msg := make([]byte, 14+len(reply))
		copy(msg, "i3-ipc")
		binary.LittleEndian.PutUint32(msg[6:10], uint32(len(reply)))
		binary.LittleEndian.PutUint32(msg[10:14], msgType)
		copy(msg[14:], reply)
		if _, err := conn.Write(msg); err != nil {
			return
		}
	}
}

func (s *fakeServer) Types() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint32(nil), s.types...)
}

// sampleTree has two outputs; DP-1 workspace 2 holds focus.
const sampleTree = `{
  "id": 1, "name": "root", "type": "root", "focus": [3, 2],
  "rect": {"x": 0, "y": 0, "width": 4480, "height": 1440},
  "nodes": [
    {
      "id": 2, "name": "__i3", "type": "output", "focus": [20],
      "nodes": [
        {"id": 20, "name": "__i3_scratch", "type": "workspace", "focus": [],
         "nodes": [], "floating_nodes": [
           {"id": 21, "name": "scratch term", "type": "floating_con", "focused": false, "nodes": [], "floating_nodes": []}
         ]}
      ]
    },
    {
      "id": 4, "name": "eDP-1", "type": "output", "focus": [40],
      "rect": {"x": 0, "y": 0, "width": 1920, "height": 1080},
      "nodes": [
        {"id": 40, "name": "1", "num": 1, "type": "workspace", "focus": [41],
         "nodes": [
           {"id": 41, "name": "other", "type": "con", "app_id": "foot", "nodes": [], "floating_nodes": []}
         ], "floating_nodes": []}
      ]
    },
    {
      "id": 3, "name": "DP-1", "type": "output", "focus": [30, 31],
      "rect": {"x": 1920, "y": 0, "width": 2560, "height": 1440},
      "nodes": [
        {"id": 31, "name": "3", "num": 3, "type": "workspace", "focus": [],
         "nodes": [
           {"id": 310, "name": "hidden", "type": "con", "nodes": [], "floating_nodes": []}
         ], "floating_nodes": []},
        {"id": 30, "name": "2", "num": 2, "type": "workspace", "focus": [100, 200],
         "rect": {"x": 1920, "y": 0, "width": 2560, "height": 1440},
         "nodes": [
           {"id": 100, "name": "", "type": "con", "focus": [101, 102],
            "rect": {"x": 1920, "y": 0, "width": 1280, "height": 1440},
            "nodes": [
              {"id": 101, "name": "editor", "type": "con", "app_id": "foot",
               "rect": {"x": 1920, "y": 24, "width": 1280, "height": 700},
               "window_rect": {"x": 0, "y": 0, "width": 1280, "height": 700},
               "deco_rect": {"x": 0, "y": 0, "width": 1280, "height": 24},
               "nodes": [], "floating_nodes": []},
              {"id": 102, "name": "browser", "type": "con", "app_id": null,
               "window_properties": {"class": "Firefox", "instance": "Navigator", "title": "browser"},
               "rect": {"x": 1920, "y": 748, "width": 1280, "height": 692},
               "deco_rect": {"x": 0, "y": 0, "width": 1280, "height": 24},
               "nodes": [], "floating_nodes": []}
            ], "floating_nodes": []},
           {"id": 103, "name": "music", "type": "con", "app_id": "spotify", "focused": true,
            "rect": {"x": 3200, "y": 24, "width": 1280, "height": 1416},
            "deco_rect": {"x": 0, "y": 0, "width": 1280, "height": 24},
            "nodes": [], "floating_nodes": []}
         ],
         "floating_nodes": [
           {"id": 200, "name": "calculator", "type": "floating_con", "app_id": "qalculate",
            "rect": {"x": 2500, "y": 400, "width": 400, "height": 300},
            "deco_rect": {"x": 0, "y": -24, "width": 400, "height": 24},
            "nodes": [], "floating_nodes": []}
         ]}
      ]
    }
  ]
}`
