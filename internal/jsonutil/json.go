// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// Encode writes v as compact single-line JSON to w, the format the
// original pipeline scripts emit.
func Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
