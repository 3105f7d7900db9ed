// internal/mappingcli/options.go
package mappingcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"patlas2json/internal/clibase"
)

// Options holds all CLI flags for mapping2json.
type Options struct {
	clibase.Common

	// Coverage mode
	Lengths string  // path to the pATLAS length table; enables percent-covered mode
	Cutoff  float64 // minimum fraction of the reference that must be covered

	// BAM input
	Progress bool
}

// NewFlagSet returns a configured FlagSet with the shared usage layout.
func NewFlagSet(name string) *flag.FlagSet {
	fs := clibase.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "samtools depth / BAM to pATLAS coverage JSON",
		func(out io.Writer, def func(string) string) {
			fmt.Fprintln(out, "\nCoverage:")
			fmt.Fprintf(out, "      --lengths string        JSON table of reference lengths; switches to percent-bases-covered mode\n")
			fmt.Fprintf(out, "      --cutoff float          Minimum covered fraction kept in --lengths mode [%s]\n", def("cutoff"))
			fmt.Fprintf(out, "      --progress              Show a byte progress bar while reading BAM [%s]\n", def("progress"))
		})
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	clibase.Register(fs, &opt.Common)
	fs.StringVar(&opt.Lengths, "lengths", "", "JSON table of reference lengths")
	fs.Float64Var(&opt.Cutoff, "cutoff", 0.6, "minimum covered fraction in --lengths mode [0.6]")
	fs.BoolVar(&opt.Progress, "progress", false, "byte progress bar for BAM input [false]")
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
	if opt.Version {
		return opt, nil
	}
	if opt.Cutoff < 0 || opt.Cutoff > 1 {
		return opt, errors.New("--cutoff must be within [0,1]")
	}
	return opt, nil
}
