// internal/distcli/options.go
package distcli

import (
	"flag"
	"fmt"
	"io"

	"patlas2json/internal/clibase"
)

// Accession key sources
const (
	KeyReference = "reference"
	KeyQuery     = "query"
)

// Options holds all CLI flags for mashdist2json.
type Options struct {
	clibase.Common

	KeyField   string // reference | query
	Similarity bool   // emit 1 - distance instead of the raw distance
}

// NewFlagSet returns a configured FlagSet with the shared usage layout.
func NewFlagSet(name string) *flag.FlagSet {
	fs := clibase.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "mash dist output to pATLAS distance JSON",
		func(out io.Writer, def func(string) string) {
			fmt.Fprintln(out, "\nDistance:")
			fmt.Fprintf(out, "      --key-field string      Accession column: reference | query [%s]\n", def("key-field"))
			fmt.Fprintf(out, "      --similarity            Emit 1 - distance instead of the distance [%s]\n", def("similarity"))
		})
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	clibase.Register(fs, &opt.Common)
	fs.StringVar(&opt.KeyField, "key-field", KeyReference, "accession column: reference | query ["+KeyReference+"]")
	fs.BoolVar(&opt.Similarity, "similarity", false, "emit 1 - distance [false]")
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
	if opt.KeyField != KeyReference && opt.KeyField != KeyQuery {
		return opt, fmt.Errorf("invalid --key-field %q", opt.KeyField)
	}
	return opt, nil
}
