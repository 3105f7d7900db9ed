package consensus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"patlas2json-core/mash"
)

func TestMergeUnionOfKeys(t *testing.T) {
	cov := map[string]float64{"a": 12, "b": 3}
	dist := map[string]float64{"b": 0.04}
	screen := map[string]mash.Hit{"c": {CopyNumber: 5, Identity: 0.99}}

	got := Merge(cov, dist, screen)
	if len(got) != 3 {
		t.Fatalf("want union of 3 accessions, got %v", got)
	}
	if got["a"].Coverage == nil || *got["a"].Coverage != 12 || got["a"].Distance != nil {
		t.Fatalf("entry a wrong: %+v", got["a"])
	}
	if b := got["b"]; b.Coverage == nil || b.Distance == nil || *b.Distance != 0.04 {
		t.Fatalf("entry b wrong: %+v", b)
	}
	if c := got["c"]; c.Screen == nil || c.Screen.CopyNumber != 5 {
		t.Fatalf("entry c wrong: %+v", c)
	}
}

func TestEntryOmitsMissingMethods(t *testing.T) {
	got := Merge(map[string]float64{"a": 1}, nil, nil)
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"a":{"coverage":1}}` {
		t.Fatalf("absent methods must be omitted: %s", b)
	}
}

func TestLoadNumbers(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "m.json")
	if err := os.WriteFile(fn, []byte(`{"acc1": 15}`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadNumbers(fn)
	if err != nil || got["acc1"] != 15 {
		t.Fatalf("load: %v %v", got, err)
	}
	if m, err := LoadNumbers(""); err != nil || m != nil {
		t.Fatalf("empty path should be a nil map: %v %v", m, err)
	}
}

func TestLoadScreen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "s.json")
	if err := os.WriteFile(fn, []byte(`{"accZ": [5, 0.998]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadScreen(fn)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if h := got["accZ"]; h.CopyNumber != 5 || h.Identity != 0.998 {
		t.Fatalf("unexpected hit: %+v", h)
	}
}
