package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats the table as YAML.
type YAMLFormatter struct{}

// Format writes the table as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, table Table) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(table); err != nil {
		return err
	}
	return encoder.Close()
}
