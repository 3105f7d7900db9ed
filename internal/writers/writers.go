// internal/writers/writers.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"patlas2json/internal/jsonutil"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers (like `head`) closing stdout early is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// DerivedPath returns the conventional output name for an input file:
// the input path with its last extension replaced by ".json".
func DerivedPath(input string) string {
	ext := filepath.Ext(input)
	return input[:len(input)-len(ext)] + ".json"
}

// Open returns the destination writer for path; "-" selects stdout.
// The caller must Close the result; closing the stdout wrapper is a no-op.
func Open(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// WriteDoc encodes one JSON document to the selected destination and
// maps failures to process exit codes: 0 on success (including a broken
// stdout pipe), 3 when the destination cannot be written.
func WriteDoc(stdout, stderr io.Writer, path string, pretty bool, doc any) int {
	w, err := Open(path, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	enc := jsonutil.Encode
	if pretty {
		enc = jsonutil.EncodePretty
	}
	err = enc(w, doc)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
