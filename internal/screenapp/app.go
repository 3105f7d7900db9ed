// internal/screenapp/app.go
package screenapp

import (
	"fmt"
	"io"

	"patlas2json-core/mash"
	"patlas2json/internal/clibase"
	"patlas2json/internal/cmdutil"
	"patlas2json/internal/input"
	"patlas2json/internal/screencli"
	"patlas2json/internal/version"
	"patlas2json/internal/writers"
)

// Run converts mash screen output into the pATLAS screen JSON document:
// {accession: [copy_number, identity]}.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := screencli.NewFlagSet("mashscreen2json")
	opts, code, done := clibase.Startup(fs, argv, screencli.ParseArgs, stdout, stderr)
	if done {
		return code
	}
	if opts.Version {
		fmt.Fprintf(stdout, "mashscreen2json version %s\n", version.Version)
		return 0
	}

	in, err := input.Open(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = in.Close() }()

	warn := cmdutil.Warner(stderr, opts.Quiet, opts.Input)
	hits, err := mash.ParseScreen(in, warn)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", opts.Input, err)
		return 1
	}
	if opts.Relative {
		hits = mash.Relative(hits)
	}

	dest := opts.Output
	if dest == "" {
		dest = writers.DerivedPath(opts.Input)
	}
	return writers.WriteDoc(stdout, stderr, dest, opts.Pretty, hits)
}
