// core/depth/lengths.go
package depth

import (
	"encoding/json"
	"fmt"
	"os"

	"patlas2json-core/accession"
)

// LoadLengths reads a JSON object mapping accessions to reference
// lengths (the pATLAS length table). Keys are normalized so lookups
// match the accessions produced by Parse.
func LoadLengths(path string) (map[string]float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := make(map[string]float64)
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		out[accession.Normalize(k)] = v
	}
	return out, nil
}
