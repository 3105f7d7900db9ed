// core/bamdepth/bamdepth.go
package bamdepth

import (
	"fmt"
	"io"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"patlas2json-core/depth"
)

type recordReader interface {
	Read() (*sam.Record, error)
}

// FormatForPath guesses the alignment format from a file suffix.
func FormatForPath(path string) (string, bool) {
	switch {
	case strings.HasSuffix(path, ".bam"):
		return "bam", true
	case strings.HasSuffix(path, ".sam"):
		return "sam", true
	}
	return "", false
}

// Parse reads SAM or BAM alignments and accumulates per-position read
// depth into a depth.Table, equivalent to mapping the input through
// `samtools depth`. Unmapped records are skipped. Positions are
// reported 1-based, matching the samtools convention.
func Parse(r io.Reader, format string) (*depth.Table, error) {
	var (
		rd  recordReader
		err error
	)
	switch format {
	case "bam":
		rd, err = bam.NewReader(r, 0)
	case "sam":
		rd, err = sam.NewReader(r)
	default:
		return nil, fmt.Errorf("unknown alignment format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if c, ok := rd.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	counts := make(map[string]map[int]int)
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if rec.Flags&sam.Unmapped != 0 || rec.Ref == nil {
			continue
		}
		name := rec.Ref.Name()
		m := counts[name]
		if m == nil {
			m = make(map[int]int)
			counts[name] = m
		}
		end := rec.Pos + rec.Len()
		for p := rec.Pos; p < end; p++ {
			m[p]++
		}
	}

	t := depth.NewTable()
	for name, m := range counts {
		for pos, n := range m {
			t.Add(name, pos+1, float64(n))
		}
	}
	return t, nil
}
