package screencli

import "testing"

func TestParse(t *testing.T) {
	o, err := ParseArgs(NewFlagSet("mashscreen2json"), []string{"--relative", "screen.txt", "out.json"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if !o.Relative || o.Input != "screen.txt" || o.Output != "out.json" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestErrorNoInput(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("mashscreen2json"), nil); err == nil {
		t.Fatal("expected error when no input is given")
	}
}
