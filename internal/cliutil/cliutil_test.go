package cliutil

import (
	"flag"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var s string
	fs.BoolVar(&b, "bool", false, "")
	fs.StringVar(&s, "str", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--bool", "in.txt", "--str", "v", "--", "out.json"})
	if len(flagArgs) != 3 || len(posArgs) != 2 || posArgs[0] != "in.txt" || posArgs[1] != "out.json" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestSplitKeepsStdinDash(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	_, posArgs := SplitFlagsAndPositionals(fs, []string{"-", "out.json"})
	if len(posArgs) != 2 || posArgs[0] != "-" {
		t.Fatalf("'-' should be a positional: %v", posArgs)
	}
}

func TestSplitEqualsForm(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var s string
	fs.StringVar(&s, "str", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--str=v", "in.txt"})
	if len(flagArgs) != 1 || len(posArgs) != 1 {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}
