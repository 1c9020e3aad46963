package exporter

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON pretty-prints v with a 2-space indent
func WriteJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false) // keep < > & readable

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
