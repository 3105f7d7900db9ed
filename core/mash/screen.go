// core/mash/screen.go
package mash

import (
	"bufio"
	"encoding/json"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"patlas2json-core/accession"
)

// Hit is one `mash screen` row kept for output. It serializes as the
// fixed pair [copy_number, identity]; the order is part of the output
// contract and must never be swapped.
type Hit struct {
	CopyNumber float64
	Identity   float64
}

func (h Hit) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{h.CopyNumber, h.Identity})
}

func (h *Hit) UnmarshalJSON(b []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	h.CopyNumber, h.Identity = pair[0], pair[1]
	return nil
}

// ParseScreen reads `mash screen` tabular output (identity,
// shared-hashes, median-multiplicity, p-value, query-id, [comment]) and
// maps each accession to its hit. Identity must be a float in [0,1];
// the median multiplicity becomes the copy number. Repeated accessions
// are last-value-wins.
func ParseScreen(r io.Reader, warn WarnFunc) (map[string]Hit, error) {
	out := make(map[string]Hit)
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
		if len(f) < 5 {
			warnf(warn, "line %d: want at least 5 fields, got %d", ln, len(f))
			continue
		}
		ident, err := strconv.ParseFloat(f[0], 64)
		if err != nil || ident < 0 || ident > 1 {
			warnf(warn, "line %d: bad identity %q", ln, f[0])
			continue
		}
		mult, err := strconv.ParseFloat(f[2], 64)
		if err != nil || mult < 0 {
			warnf(warn, "line %d: bad median multiplicity %q", ln, f[2])
			continue
		}
		out[accession.Normalize(f[4])] = Hit{CopyNumber: mult, Identity: ident}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Relative rescales copy numbers by the median multiplicity across all
// hits and drops hits at or below that median, keeping only sequences
// clearly more abundant than the background (plasmids sit above the
// chromosomal median).
func Relative(hits map[string]Hit) map[string]Hit {
	out := make(map[string]Hit)
	if len(hits) == 0 {
		return out
	}
	ms := make([]float64, 0, len(hits))
	for _, h := range hits {
		ms = append(ms, h.CopyNumber)
	}
	sort.Float64s(ms)
	med := median(ms)
	if med <= 0 {
		return out
	}
	for k, h := range hits {
		if h.CopyNumber > med {
			out[k] = Hit{CopyNumber: math.Trunc(h.CopyNumber / med), Identity: h.Identity}
		}
	}
	return out
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
