// internal/mappingapp/app.go
package mappingapp

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/cheggaaa/pb.v1"

	"patlas2json-core/bamdepth"
	"patlas2json-core/depth"
	"patlas2json/internal/clibase"
	"patlas2json/internal/cmdutil"
	"patlas2json/internal/input"
	"patlas2json/internal/mappingcli"
	"patlas2json/internal/version"
	"patlas2json/internal/writers"
)

// Run converts a samtools-depth table (or a SAM/BAM alignment file)
// into the pATLAS coverage JSON document.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := mappingcli.NewFlagSet("mapping2json")
	opts, code, done := clibase.Startup(fs, argv, mappingcli.ParseArgs, stdout, stderr)
	if done {
		return code
	}
	if opts.Version {
		fmt.Fprintf(stdout, "mapping2json version %s\n", version.Version)
		return 0
	}

	warn := cmdutil.Warner(stderr, opts.Quiet, opts.Input)
	table, err := readTable(opts, stderr, warn)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var doc map[string]float64
	if opts.Lengths != "" {
		lengths, err := depth.LoadLengths(opts.Lengths)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		doc = table.PercentCovered(lengths, opts.Cutoff, warn)
	} else {
		doc = table.MeanCoverage()
	}

	dest := opts.Output
	if dest == "" {
		dest = writers.DerivedPath(opts.Input)
	}
	return writers.WriteDoc(stdout, stderr, dest, opts.Pretty, doc)
}

func readTable(opts mappingcli.Options, stderr io.Writer, warn depth.WarnFunc) (*depth.Table, error) {
	if format, ok := bamdepth.FormatForPath(opts.Input); ok {
		f, err := os.Open(opts.Input)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()

		var r io.Reader = f
		if opts.Progress {
			if fi, err := f.Stat(); err == nil {
				bar := pb.New64(fi.Size()).SetUnits(pb.U_BYTES)
				bar.Output = stderr
				bar.Start()
				defer bar.Finish()
				r = bar.NewProxyReader(f)
			}
		}
		return bamdepth.Parse(r, format)
	}

	in, err := input.Open(opts.Input)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()
	return depth.Parse(in, warn)
}
