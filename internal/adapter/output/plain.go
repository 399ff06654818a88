package output

import (
	"fmt"
	"io"
	"text/tabwriter"
	"text/template"
)

// PlainFormatter writes an aligned table with a header.
type PlainFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// Format writes the table as plain text.
func (f *PlainFormatter) Format(w io.Writer, table Table) error {
	if f.template != nil {
		return executeTemplate(w, f.template, table)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s workspace %s\n", table.Output.Name, table.Workspace.Name)
	fmt.Fprintln(tw, "LABEL\tCON_ID\tX\tY\tFOCUSED\tAPP\tNAME")
	for _, h := range table.Hints {
		focused := ""
		if h.Window.Focused {
			focused = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t%s\n",
			h.Label,
			h.Window.ID,
			h.X,
			h.Y,
			focused,
			h.Window.AppID,
			oneLine(truncate(h.Window.Name, f.opts.NameMaxLen)),
		)
	}
	return tw.Flush()
}
