package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/easyfocus/internal/model"
)

// JSONFormatter formats the table as indented JSON.
type JSONFormatter struct{}

// Format writes the table as a JSON object.
func (f *JSONFormatter) Format(w io.Writer, table Table) error {
	if table.Hints == nil {
		table.Hints = []model.Hint{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(table)
}
