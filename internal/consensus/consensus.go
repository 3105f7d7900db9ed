// internal/consensus/consensus.go
package consensus

import (
	"encoding/json"
	"fmt"
	"os"

	"patlas2json-core/mash"
)

// Entry aggregates the per-method results for one accession. Methods
// that did not report the accession are omitted from the JSON.
type Entry struct {
	Coverage *float64  `json:"coverage,omitempty"`
	Distance *float64  `json:"distance,omitempty"`
	Screen   *mash.Hit `json:"screen,omitempty"`
}

// Merge joins the three converter documents into one object keyed by
// the union of their accessions.
func Merge(coverage, distance map[string]float64, screen map[string]mash.Hit) map[string]Entry {
	out := make(map[string]Entry)
	for k, v := range coverage {
		v := v
		e := out[k]
		e.Coverage = &v
		out[k] = e
	}
	for k, v := range distance {
		v := v
		e := out[k]
		e.Distance = &v
		out[k] = e
	}
	for k, h := range screen {
		h := h
		e := out[k]
		e.Screen = &h
		out[k] = e
	}
	return out
}

// LoadNumbers reads a converter output of shape {accession: number}.
func LoadNumbers(path string) (map[string]float64, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return out, nil
}

// LoadScreen reads a mashscreen2json output of shape
// {accession: [copy_number, identity]}.
func LoadScreen(path string) (map[string]mash.Hit, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]mash.Hit)
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return out, nil
}
