// internal/clibase/startup.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Startup runs the shared CLI prologue: parse argv (empty argv means
// -h), print usage on help or usage errors, and pick the exit code.
// done reports that the app should stop with code.
func Startup[T any](
	fs *flag.FlagSet, argv []string,
	parse func(*flag.FlagSet, []string) (T, error),
	stdout, stderr io.Writer,
) (opts T, code int, done bool) {
	fs.SetOutput(io.Discard)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := parse(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return opts, 0, true
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return opts, 2, true
	}
	return opts, 0, false
}
