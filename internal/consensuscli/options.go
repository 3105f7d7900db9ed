// internal/consensuscli/options.go
package consensuscli

import (
	"errors"
	"flag"
	"fmt"

	"patlas2json/internal/clibase"
	"patlas2json/internal/cliutil"
	"patlas2json/internal/version"
)

// Options holds all CLI flags for consensus2json. The command takes the
// JSON documents produced by the other converters, so it has its own
// input surface instead of the shared single-input one.
type Options struct {
	Mapping string
	Dist    string
	Screen  string

	Output string
	Pretty bool

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := clibase.NewFlagSet(name)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s – merge converter outputs into one consensus JSON\n\n", name)
		fmt.Fprintln(out, "License: GPL-3.0")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [options]\n", name)
		fmt.Fprintln(out, "\nInput (at least one required):")
		fmt.Fprintln(out, "      --mapping string        mapping2json output")
		fmt.Fprintln(out, "      --dist string           mashdist2json output")
		fmt.Fprintln(out, "      --screen string         mashscreen2json output")
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --output string         Output JSON path ('-' = stdout) [consensus.json]")
		fmt.Fprintln(out, "      --pretty                Indent the JSON document [false]")
		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Mapping, "mapping", "", "mapping2json output")
	fs.StringVar(&opt.Dist, "dist", "", "mashdist2json output")
	fs.StringVar(&opt.Screen, "screen", "", "mashscreen2json output")
	fs.StringVar(&opt.Output, "output", "consensus.json", "output JSON path ('-' = stdout)")
	fs.StringVar(&opt.Output, "o", "consensus.json", "alias of --output")
	fs.BoolVar(&opt.Pretty, "pretty", false, "indent the JSON document [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if len(posArgs) > 0 {
		return opt, fmt.Errorf("unexpected argument %q", posArgs[0])
	}
	if opt.Mapping == "" && opt.Dist == "" && opt.Screen == "" {
		return opt, errors.New("provide at least one of --mapping, --dist, --screen")
	}
	return opt, nil
}
