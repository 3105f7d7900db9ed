// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Warner binds Warnf to a destination and input file name, for the
// per-line warnings emitted by the parsers.
func Warner(dst io.Writer, quiet bool, file string) func(format string, a ...any) {
	return func(format string, a ...any) {
		Warnf(dst, quiet, "%s: %s", file, fmt.Sprintf(format, a...))
	}
}
