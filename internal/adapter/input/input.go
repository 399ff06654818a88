// Package input provides window directories that read a saved layout tree
// instead of querying a live compositor.
package input

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/easyfocus/internal/model"
	"github.com/jmylchreest/easyfocus/internal/sway"
)

// maxTreeSize bounds how much of a tree dump is read.
const maxTreeSize = 64 << 20

// TreeDirectory answers snapshot queries from a `swaymsg -t get_tree` or
// `i3-msg -t get_tree` dump.
type TreeDirectory struct {
	source string
	reader io.Reader
	logger *slog.Logger
}

// NewTreeDirectory reads the tree from path, or from stdin when path is "-".
func NewTreeDirectory(path string, logger *slog.Logger) (*TreeDirectory, error) {
	if path == "-" {
		return NewTreeDirectoryWithReader("stdin", os.Stdin, logger), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &AdapterError{Source: path, Message: "failed to open tree dump", Err: err}
	}
	return NewTreeDirectoryWithReader(path, f, logger), nil
}

// NewTreeDirectoryWithReader reads the tree from r.
func NewTreeDirectoryWithReader(source string, r io.Reader, logger *slog.Logger) *TreeDirectory {
	if logger == nil {
		logger = slog.Default()
	}
	return &TreeDirectory{source: source, reader: r, logger: logger}
}

// Snapshot decodes the dump and extracts the focused workspace.
// The reader is consumed and closed if it is closable. Windows with negative
// sizes are rejected since the dump is not compositor output.
func (d *TreeDirectory) Snapshot(ctx context.Context) (model.Snapshot, error) {
	if c, ok := d.reader.(io.Closer); ok && d.reader != os.Stdin {
		defer func() { _ = c.Close() }()
	}

	if err := ctx.Err(); err != nil {
		return model.Snapshot{}, err
	}

	data, err := io.ReadAll(io.LimitReader(d.reader, maxTreeSize))
	if err != nil {
		return model.Snapshot{}, &AdapterError{Source: d.source, Message: "failed to read tree dump", Err: err}
	}

	d.logger.Debug("read tree dump", "source", d.source, "size", humanize.Bytes(uint64(len(data))))

	var root sway.Node
	if err := json.Unmarshal(data, &root); err != nil {
		return model.Snapshot{}, &AdapterError{Source: d.source, Message: "failed to parse tree dump", Err: err}
	}

	snap, err := sway.SnapshotFromTree(&root)
	if err != nil {
		return model.Snapshot{}, err
	}

	for _, w := range snap.Windows {
		for _, r := range []model.Rect{w.Rect, w.WindowRect, w.DecoRect} {
			if !r.Valid() {
				return model.Snapshot{}, &AdapterError{
					Source:  d.source,
					Message: fmt.Sprintf("malformed geometry for window %d: %s", w.ID, r),
				}
			}
		}
	}

	return snap, nil
}

// AdapterError represents an adapter-related error.
type AdapterError struct {
	Source  string
	Message string
	Err     error
}

func (e *AdapterError) Error() string {
	msg := e.Source + ": " + e.Message
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}
