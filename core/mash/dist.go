// core/mash/dist.go
package mash

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"patlas2json-core/accession"
)

// WarnFunc receives one message per skipped input line.
// A nil WarnFunc discards the messages.
type WarnFunc func(format string, a ...any)

func warnf(warn WarnFunc, format string, a ...any) {
	if warn != nil {
		warn(format, a...)
	}
}

// KeyField selects which column of a `mash dist` row provides the
// accession key.
type KeyField int

const (
	KeyReference KeyField = iota // second column
	KeyQuery                     // first column
)

// ParseDist reads `mash dist` tabular output (query, reference,
// distance, p-value, shared-hashes) and maps each accession to its
// distance, taken verbatim. Distances must parse as floats in [0,1];
// exactly 1 is a valid maximal distance, not a sentinel. Repeated
// accessions are last-value-wins.
func ParseDist(r io.Reader, key KeyField, warn WarnFunc) (map[string]float64, error) {
	out := make(map[string]float64)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 3 {
			warnf(warn, "line %d: want at least 3 fields, got %d", ln, len(f))
			continue
		}
		d, err := strconv.ParseFloat(f[2], 64)
		if err != nil || d < 0 || d > 1 {
			warnf(warn, "line %d: bad distance %q", ln, f[2])
			continue
		}
		id := f[1]
		if key == KeyQuery {
			id = f[0]
		}
		out[accession.Normalize(id)] = d
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
