// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"patlas2json/internal/version"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (input columns, extra flags).
func UsageCommon(fs *flag.FlagSet, name, oneline string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – %s\n\n", name, oneline)
		fmt.Fprintln(out, "License: GPL-3.0")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [options] <input> [output]\n", name)

		// Tool-specific additions
		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nInput / output:")
		fmt.Fprintln(out, "  -i, --input string          Input file ('-' = stdin) [*]")
		fmt.Fprintf(out, "  -o, --output string         Output JSON path ('-' = stdout; default: derived from input)\n")
		fmt.Fprintf(out, "      --pretty                Indent the JSON document [%s]\n", def("pretty"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress malformed-line warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
