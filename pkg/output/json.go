package output

import (
	"io"

	json "github.com/goccy/go-json"
)

// JSONFormat writes the statement as indented JSON.
func JSONFormat(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
