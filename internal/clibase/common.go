// internal/clibase/common.go
package clibase

import (
	"flag"
	"fmt"

	"patlas2json/internal/cliutil"
)

// Common holds the CLI fields shared by every converter command.
type Common struct {
	// Input
	Input string

	// Output
	Output string // destination path, '-' = stdout, "" = derived from input
	Pretty bool

	// Misc
	Quiet   bool
	Version bool
}

// Register wires the shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Input, "input", "", "input file ('-' = stdin)")
	fs.StringVar(&c.Input, "i", "", "alias of --input")

	fs.StringVar(&c.Output, "output", "", "output JSON path ('-' = stdout; default: derived from input)")
	fs.StringVar(&c.Output, "o", "", "alias of --output")
	fs.BoolVar(&c.Pretty, "pretty", false, "indent the JSON document [false]")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress malformed-line warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
}

// Parse splits argv into flags and positionals, parses the flags, and
// folds up to two positionals into Input and Output. Remaining
// positionals are an error.
func Parse(fs *flag.FlagSet, argv []string, c *Common) error {
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return err
	}
	if c.Input == "" && len(posArgs) > 0 {
		c.Input = posArgs[0]
		posArgs = posArgs[1:]
	}
	if c.Output == "" && len(posArgs) > 0 {
		c.Output = posArgs[0]
		posArgs = posArgs[1:]
	}
	if len(posArgs) > 0 {
		return fmt.Errorf("unexpected argument %q", posArgs[0])
	}
	return nil
}

// Validate checks the shared fields once command-specific parsing is done.
func (c *Common) Validate() error {
	if c.Version {
		return nil
	}
	if c.Input == "" {
		return fmt.Errorf("an input file is required (--input or positional)")
	}
	if c.Input == "-" && c.Output == "" {
		return fmt.Errorf("--output is required when reading from stdin")
	}
	return nil
}
