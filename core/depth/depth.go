// core/depth/depth.go
package depth

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mingzhi/gomath/stat/desc"

	"patlas2json-core/accession"
)

// WarnFunc receives one message per skipped input line or dropped record.
// A nil WarnFunc is allowed and discards the messages.
type WarnFunc func(format string, a ...any)

func warnf(warn WarnFunc, format string, a ...any) {
	if warn != nil {
		warn(format, a...)
	}
}

// Table accumulates a per-accession depth profile: the running mean of
// the depth column and the set of distinct covered positions.
type Table struct {
	profs map[string]*profile
}

type profile struct {
	mean      *desc.Mean
	positions map[int]struct{}
}

func NewTable() *Table {
	return &Table{profs: make(map[string]*profile)}
}

// Add records one depth observation. The reference identifier is
// normalized to its accession form before grouping.
func (t *Table) Add(ref string, pos int, d float64) {
	key := accession.Normalize(ref)
	p := t.profs[key]
	if p == nil {
		p = &profile{mean: desc.NewMean(), positions: make(map[int]struct{})}
		t.profs[key] = p
	}
	p.mean.Increment(d)
	p.positions[pos] = struct{}{}
}

// Parse reads a `samtools depth` table (accession, position, depth).
// Malformed lines are skipped via warn; blank lines and #-comments are
// ignored silently.
func Parse(r io.Reader, warn WarnFunc) (*Table, error) {
	t := NewTable()
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
		if len(f) != 3 {
			warnf(warn, "line %d: want 3 fields, got %d", ln, len(f))
			continue
		}
		pos, err := strconv.Atoi(f[1])
		if err != nil {
			warnf(warn, "line %d: bad position %q", ln, f[1])
			continue
		}
		d, err := strconv.ParseFloat(f[2], 64)
		if err != nil || d < 0 {
			warnf(warn, "line %d: bad depth %q", ln, f[2])
			continue
		}
		t.Add(f[0], pos, d)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// MeanCoverage returns the mean depth across reported positions for
// every accession in the table.
func (t *Table) MeanCoverage() map[string]float64 {
	out := make(map[string]float64, len(t.profs))
	for k, p := range t.profs {
		out[k] = p.mean.GetResult()
	}
	return out
}

// PercentCovered returns, per accession, the fraction of the reference
// covered by at least one read: distinct covered positions divided by
// the reference length. Accessions below cutoff or absent from lengths
// are dropped.
func (t *Table) PercentCovered(lengths map[string]float64, cutoff float64, warn WarnFunc) map[string]float64 {
	out := make(map[string]float64)
	for k, p := range t.profs {
		length, ok := lengths[k]
		if !ok || length <= 0 {
			warnf(warn, "no reference length for %s, dropped", k)
			continue
		}
		frac := float64(len(p.positions)) / length
		if frac >= cutoff {
			out[k] = frac
		}
	}
	return out
}

// Len returns the number of accessions accumulated so far.
func (t *Table) Len() int { return len(t.profs) }
