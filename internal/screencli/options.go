// internal/screencli/options.go
package screencli

import (
	"flag"
	"fmt"
	"io"

	"patlas2json/internal/clibase"
)

// Options holds all CLI flags for mashscreen2json.
type Options struct {
	clibase.Common

	Relative bool // rescale copy numbers by the median multiplicity
}

// NewFlagSet returns a configured FlagSet with the shared usage layout.
func NewFlagSet(name string) *flag.FlagSet {
	fs := clibase.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "mash screen output to pATLAS screen JSON",
		func(out io.Writer, def func(string) string) {
			fmt.Fprintln(out, "\nScreen:")
			fmt.Fprintf(out, "      --relative              Rescale copy numbers by the median multiplicity and drop background hits [%s]\n", def("relative"))
		})
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	clibase.Register(fs, &opt.Common)
	fs.BoolVar(&opt.Relative, "relative", false, "median-rescaled copy numbers [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	if err := clibase.Parse(fs, argv, &opt.Common); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if err := opt.Validate(); err != nil {
		return opt, err
	}
	return opt, nil
}
