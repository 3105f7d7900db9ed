// internal/consensusapp/app.go
package consensusapp

import (
	"fmt"
	"io"

	"patlas2json/internal/clibase"
	"patlas2json/internal/consensus"
	"patlas2json/internal/consensuscli"
	"patlas2json/internal/version"
	"patlas2json/internal/writers"
)

// Run merges the JSON documents of the three converters into one
// consensus object keyed by the union of their accessions.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := consensuscli.NewFlagSet("consensus2json")
	opts, code, done := clibase.Startup(fs, argv, consensuscli.ParseArgs, stdout, stderr)
	if done {
		return code
	}
	if opts.Version {
		fmt.Fprintf(stdout, "consensus2json version %s\n", version.Version)
		return 0
	}

	coverage, err := consensus.LoadNumbers(opts.Mapping)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	distance, err := consensus.LoadNumbers(opts.Dist)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	screen, err := consensus.LoadScreen(opts.Screen)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	doc := consensus.Merge(coverage, distance, screen)
	return writers.WriteDoc(stdout, stderr, opts.Output, opts.Pretty, doc)
}
