package sway

import (
	"context"
	"log/slog"

	swayipc "github.com/joshuarubin/go-sway"
)

// conn is the part of the IPC library client easyfocus uses.
type conn interface {
	GetTree(ctx context.Context) (*swayipc.Node, error)
	GetVersion(ctx context.Context) (*swayipc.Version, error)
	RunCommand(ctx context.Context, command string) ([]swayipc.RunCommandReply, error)
}

// Client is a connection to the compositor IPC socket.
type Client struct {
	conn   conn
	close  context.CancelFunc
	logger *slog.Logger
}

// Dial connects to the IPC socket at path.
// The connection lives until Close is called or ctx is done.
func Dial(ctx context.Context, path string, logger *slog.Logger) (*Client, error) {
	connCtx, cancel := context.WithCancel(ctx)
	c, err := swayipc.New(connCtx, swayipc.WithSocketPath(path))
	if err != nil {
		cancel()
		return nil, &IPCError{Op: "dial", Message: path, Err: err}
	}

	client := newClient(c, logger)
	client.close = cancel
	client.logger.Debug("connected to compositor", "socket", path)
	return client, nil
}

// Connect finds the IPC socket, dials it and logs the compositor version.
func Connect(ctx context.Context, logger *slog.Logger) (*Client, error) {
	path, err := SocketPath()
	if err != nil {
		return nil, err
	}

	c, err := Dial(ctx, path, logger)
	if err != nil {
		return nil, err
	}

	if v, err := c.Version(ctx); err != nil {
		c.logger.Debug("compositor version unavailable", "error", err)
	} else {
		c.logger.Debug("compositor", "version", v)
	}
	return c, nil
}

func newClient(c conn, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{conn: c, close: func() {}, logger: logger}
}

// Close closes the connection.
func (c *Client) Close() error {
	c.close()
	return nil
}

// Tree returns the compositor's layout tree.
func (c *Client) Tree(ctx context.Context) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, &IPCError{Op: "get_tree", Err: err}
	}

	root, err := c.conn.GetTree(ctx)
	if err != nil {
		return nil, &IPCError{Op: "get_tree", Err: err}
	}
	if root == nil {
		return nil, &IPCError{Op: "get_tree", Message: "empty tree"}
	}

	tree := fromIPC(root)
	c.logger.Debug("ipc reply", "op", "get_tree", "nodes", tree.count())
	return tree, nil
}

// Version returns the compositor's human readable version.
func (c *Client) Version(ctx context.Context) (string, error) {
	v, err := c.conn.GetVersion(ctx)
	if err != nil {
		return "", &IPCError{Op: "get_version", Err: err}
	}
	if v == nil {
		return "", &IPCError{Op: "get_version", Message: "empty reply"}
	}
	return v.HumanReadable, nil
}

// RunCommand runs a compositor command.
// Any unsuccessful result in the reply is returned as an *IPCError.
func (c *Client) RunCommand(ctx context.Context, command string) error {
	if err := ctx.Err(); err != nil {
		return &IPCError{Op: "run_command", Message: command, Err: err}
	}

	replies, err := c.conn.RunCommand(ctx, command)
	if err != nil {
		return &IPCError{Op: "run_command", Message: command, Err: err}
	}

	for _, r := range replies {
		if !r.Success {
			return &IPCError{Op: "run_command", Message: command + ": " + r.Error}
		}
	}

	c.logger.Debug("ran command", "command", command)
	return nil
}
