package sway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmylchreest/easyfocus/internal/model"
)

// Directory answers which windows are on the focused workspace.
type Directory struct {
	client *Client
	logger *slog.Logger
}

// NewDirectory creates a directory backed by client.
func NewDirectory(client *Client, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{client: client, logger: logger}
}

// Snapshot queries the tree once and returns the focused output, its focused
// workspace, and that workspace's windows in tree order.
func (d *Directory) Snapshot(ctx context.Context) (model.Snapshot, error) {
	root, err := d.client.Tree(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	return SnapshotFromTree(root)
}

// SnapshotFromTree extracts a snapshot from an already fetched tree.
func SnapshotFromTree(root *Node) (model.Snapshot, error) {
	output, err := FocusedOutput(root)
	if err != nil {
		return model.Snapshot{}, err
	}

	workspace, err := FocusedWorkspace(output)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("output %s: %w", output.Name, err)
	}

	leaves := Windows(workspace)
	windows := make([]model.Window, len(leaves))
	for i, n := range leaves {
		windows[i] = n.ToWindow()
	}

	return model.Snapshot{
		Output:    output.ToOutput(),
		Workspace: workspace.ToWorkspace(output.Name),
		Windows:   windows,
	}, nil
}

// Commander issues window commands.
type Commander struct {
	client *Client
}

// NewCommander creates a commander backed by client.
func NewCommander(client *Client) *Commander {
	return &Commander{client: client}
}

// Focus gives input focus to the container with the given id.
func (c *Commander) Focus(ctx context.Context, id int64) error {
	return c.client.RunCommand(ctx, fmt.Sprintf("[con_id=%d] focus", id))
}

// Swap swaps the focused container with the container with the given id.
func (c *Commander) Swap(ctx context.Context, id int64) error {
	return c.client.RunCommand(ctx, fmt.Sprintf("swap container with con_id %d", id))
}
