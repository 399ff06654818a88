package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// DmenuFormatter writes one line per hint for dmenu, rofi or fuzzel.
type DmenuFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// Format writes the hints one per line: label, app, name.
func (f *DmenuFormatter) Format(w io.Writer, table Table) error {
	if f.template != nil {
		return executeTemplate(w, f.template, table)
	}

	sep := f.opts.Separator
	if sep == "" {
		sep = " | "
	}

	for _, h := range table.Hints {
		parts := []string{h.Label}
		if h.Window.AppID != "" {
			parts = append(parts, h.Window.AppID)
		}
		parts = append(parts, oneLine(truncate(h.Window.DisplayName(), f.opts.NameMaxLen)))
		if _, err := fmt.Fprintln(w, strings.Join(parts, sep)); err != nil {
			return err
		}
	}
	return nil
}

// oneLine collapses whitespace runs, including newlines, into single spaces.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
