// core/accession/accession.go
package accession

import (
	"path"
	"strings"
)

// Sequence-file suffixes stripped from tool-reported identifiers.
var seqSuffixes = []string{".fasta", ".fas", ".fna", ".fa"}

// Normalize reduces a tool-reported sequence identifier to the bare
// accession used as the join key across all converter outputs: any
// directory prefix is removed, a trailing ".gz" and one sequence-file
// suffix are stripped, and at most the first three "_"-separated fields
// are kept (pATLAS stores accessions as e.g. "NC_012345_1").
func Normalize(id string) string {
	s := strings.TrimSpace(id)
	if s == "" {
		return s
	}
	s = path.Base(s)
	s = strings.TrimSuffix(s, ".gz")
	low := strings.ToLower(s)
	for _, suf := range seqSuffixes {
		if strings.HasSuffix(low, suf) {
			s = s[:len(s)-len(suf)]
			break
		}
	}
	if parts := strings.Split(s, "_"); len(parts) > 3 {
		s = strings.Join(parts[:3], "_")
	}
	return s
}
