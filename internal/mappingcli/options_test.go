package mappingcli

import (
	"errors"
	"flag"
	"testing"
)

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(NewFlagSet("mapping2json"), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestFlagInput(t *testing.T) {
	o := mustParse(t, "--input", "depth.txt", "--output", "out.json")
	if o.Input != "depth.txt" || o.Output != "out.json" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestPositionalInputOutput(t *testing.T) {
	o := mustParse(t, "depth.txt", "out.json", "--pretty")
	if o.Input != "depth.txt" || o.Output != "out.json" || !o.Pretty {
		t.Errorf("positional parse %+v", o)
	}
}

func TestCutoffDefault(t *testing.T) {
	o := mustParse(t, "depth.txt")
	if o.Cutoff != 0.6 {
		t.Errorf("default cutoff = %v", o.Cutoff)
	}
}

func TestErrorMissingInput(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("mapping2json"), []string{"--pretty"}); err == nil {
		t.Fatal("expected error when no input is given")
	}
}

func TestErrorCutoffRange(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("mapping2json"), []string{"depth.txt", "--cutoff", "1.5"}); err == nil {
		t.Fatal("expected cutoff range error")
	}
}

func TestErrorStdinWithoutOutput(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("mapping2json"), []string{"-"}); err == nil {
		t.Fatal("stdin input requires an explicit output")
	}
}

func TestErrorExtraPositional(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("mapping2json"), []string{"a", "b", "c"}); err == nil {
		t.Fatal("expected error for extra positional")
	}
}

func TestHelp(t *testing.T) {
	_, err := ParseArgs(NewFlagSet("mapping2json"), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o := mustParse(t, "--version")
	if !o.Version {
		t.Errorf("version flag lost: %+v", o)
	}
}
