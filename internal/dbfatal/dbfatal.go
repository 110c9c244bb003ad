// Package dbfatal holds the one code path every unrecoverable engine error
// goes through. A fatal condition (corrupt file length, out-of-bounds page,
// flush of an uncached page, page cap exceeded) means the on-disk file may no
// longer match the engine's in-memory assumptions; the only safe move is to
// print a diagnostic and die before writing anything else.
package dbfatal

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Exit is os.Exit by default; tests override it to observe a fatal call
// without killing the test binary.
var Exit = os.Exit

// Fatalf prints a formatted diagnostic to stderr and exits the process.
func Fatalf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, "fatal: "+fmt.Sprintf(format, args...))
	Exit(1)
}

// Wrap attaches msg to err with a stack trace and reports it as fatal.
// A nil err is a no-op.
func Wrap(err error, msg string) {
	if err == nil {
		return
	}
	wrapped := errors.Wrap(err, msg)
	fmt.Fprintf(os.Stderr, "fatal: %+v\n", wrapped)
	Exit(1)
}
