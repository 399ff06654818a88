package output

import (
	"fmt"
	"io"
)

// IDsFormatter outputs the container ids in label order, one per line.
// Useful for piping into swaymsg.
type IDsFormatter struct{}

// Format writes container ids to the writer.
func (f *IDsFormatter) Format(w io.Writer, table Table) error {
	for _, h := range table.Hints {
		if _, err := fmt.Fprintln(w, h.Window.ID); err != nil {
			return err
		}
	}
	return nil
}
