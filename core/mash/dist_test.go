package mash

import (
	"strings"
	"testing"
)

func TestParseDist(t *testing.T) {
	in := "queryX\trefY.fasta\t0.0423\t0\t10/1000\n"
	got, err := ParseDist(strings.NewReader(in), KeyReference, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 1 || got["refY"] != 0.0423 {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestParseDistQueryKey(t *testing.T) {
	in := "queryX.fna refY.fasta 0.25 0 10/1000\n"
	got, err := ParseDist(strings.NewReader(in), KeyQuery, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got["queryX"] != 0.25 {
		t.Fatalf("query key not used: %v", got)
	}
}

func TestParseDistMaximalDistanceValid(t *testing.T) {
	in := "q ref.fa 1 1 0/1000\n"
	got, err := ParseDist(strings.NewReader(in), KeyReference, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d, ok := got["ref"]; !ok || d != 1 {
		t.Fatalf("distance 1 must be kept: %v", got)
	}
}

func TestParseDistSkipsOutOfRange(t *testing.T) {
	in := "q a.fa 1.5 0 1/1000\nq b.fa -0.1 0 1/1000\nq c.fa nan?! 0 1/1000\nq d.fa 0.5 0 1/1000\n"
	var warns int
	got, err := ParseDist(strings.NewReader(in), KeyReference, func(string, ...any) { warns++ })
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if warns != 3 || len(got) != 1 || got["d"] != 0.5 {
		t.Fatalf("warns=%d got=%v", warns, got)
	}
}

func TestParseDistEmpty(t *testing.T) {
	got, err := ParseDist(strings.NewReader("\n\n"), KeyReference, nil)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil map, got %v err=%v", got, err)
	}
}

func TestParseDistLastWins(t *testing.T) {
	in := "q ref.fa 0.1 0 1/1000\nq ref.fa 0.2 0 1/1000\n"
	got, err := ParseDist(strings.NewReader(in), KeyReference, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got["ref"] != 0.2 {
		t.Fatalf("repeated key should be last-value-wins: %v", got)
	}
}
