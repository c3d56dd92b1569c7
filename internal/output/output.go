package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Write encodes v to w as JSON or YAML. Table output is rendered by the ui
// package and is not handled here.
func Write(w io.Writer, format string, v interface{}) error {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "output: encode json")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "output: encode yaml")
		}
		if err := enc.Close(); err != nil {
			return eris.Wrap(err, "output: flush yaml")
		}
	default:
		return eris.Errorf("output: unsupported format %q", format)
	}
	return nil
}
