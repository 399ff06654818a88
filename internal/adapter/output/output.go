// Package output provides formatters for the hint table printed by `easyfocus list`.
package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jmylchreest/easyfocus/internal/model"
)

// Table is the hint table for one workspace.
type Table struct {
	Output    model.Output    `json:"output" yaml:"output"`
	Workspace model.Workspace `json:"workspace" yaml:"workspace"`
	Hints     []model.Hint    `json:"hints" yaml:"hints"`
}

// Formatter formats a hint table for output.
type Formatter interface {
	Format(w io.Writer, table Table) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatDmenu FormatType = "dmenu"
	FormatIDs   FormatType = "ids"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// ValidFormats returns all valid format values.
func ValidFormats() []FormatType {
	return []FormatType{FormatPlain, FormatDmenu, FormatIDs, FormatJSON, FormatYAML}
}

// ParseFormat converts a string to a FormatType.
func ParseFormat(s string) (FormatType, error) {
	for _, f := range ValidFormats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format %q, must be one of: %v", s, ValidFormats())
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template   string // Custom per-hint template for plain and dmenu
	Separator  string // Field separator for dmenu
	NameMaxLen int    // Maximum window name length (0 = unlimited)
}

// DefaultFormatterOptions returns sensible defaults.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		Separator:  " | ",
		NameMaxLen: 60,
	}
}

// NewFormatter creates a formatter for the specified format type.
// A custom template that fails to parse is an error.
func NewFormatter(format FormatType, opts FormatterOptions) (Formatter, error) {
	var tmpl *template.Template
	if opts.Template != "" {
		var err error
		tmpl, err = template.New(string(format)).Funcs(templateFuncs()).Parse(opts.Template)
		if err != nil {
			return nil, fmt.Errorf("invalid template: %w", err)
		}
	}

	switch format {
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatIDs:
		return &IDsFormatter{}, nil
	case FormatDmenu:
		return &DmenuFormatter{opts: opts, template: tmpl}, nil
	case FormatPlain, "":
		return &PlainFormatter{opts: opts, template: tmpl}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// templateData provides data for custom templates.
type templateData struct {
	model.Hint
	Output    string
	Workspace string
}

// templateFuncs returns template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate": truncate,
		"upper":    strings.ToUpper,
	}
}

func executeTemplate(w io.Writer, tmpl *template.Template, table Table) error {
	for _, h := range table.Hints {
		data := templateData{Hint: h, Output: table.Output.Name, Workspace: table.Workspace.Name}
		if err := tmpl.Execute(w, data); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// truncate shortens s to maxLen runes, marking the cut with "...".
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 0 || len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
