// internal/distapp/app.go
package distapp

import (
	"fmt"
	"io"

	"patlas2json-core/mash"
	"patlas2json/internal/clibase"
	"patlas2json/internal/cmdutil"
	"patlas2json/internal/distcli"
	"patlas2json/internal/input"
	"patlas2json/internal/version"
	"patlas2json/internal/writers"
)

// Run converts mash dist output into the pATLAS distance JSON document.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := distcli.NewFlagSet("mashdist2json")
	opts, code, done := clibase.Startup(fs, argv, distcli.ParseArgs, stdout, stderr)
	if done {
		return code
	}
	if opts.Version {
		fmt.Fprintf(stdout, "mashdist2json version %s\n", version.Version)
		return 0
	}

	in, err := input.Open(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = in.Close() }()

	key := mash.KeyReference
	if opts.KeyField == distcli.KeyQuery {
		key = mash.KeyQuery
	}
	warn := cmdutil.Warner(stderr, opts.Quiet, opts.Input)
	doc, err := mash.ParseDist(in, key, warn)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", opts.Input, err)
		return 1
	}
	if opts.Similarity {
		for k, d := range doc {
			doc[k] = 1 - d
		}
	}

	dest := opts.Output
	if dest == "" {
		dest = writers.DerivedPath(opts.Input)
	}
	return writers.WriteDoc(stdout, stderr, dest, opts.Pretty, doc)
}
