package errs

import (
	"fmt"
	"io"
	"os"

	goerrors "github.com/go-errors/errors"
	"github.com/mattn/go-isatty"
)

// Report writes err's message to w: bright red SGR when w is a
// terminal, plain text otherwise (original_source/error.cpp's
// Error::Report: red console output via IsConsole, a bare fputws when
// stderr is redirected). A nil err is a no-op.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	msg := err.Error()

	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprintf(w, "\x1b[0;91m%s\x1b[0m\n", msg)
		return
	}
	fmt.Fprintln(w, msg)
}

// Fatal reports a known, user-facing error to stderr and exits with
// status 1, the teacher's `log.Fatal(err.Error())` pattern for errors
// whose message is already the whole story.
func Fatal(err error) {
	Report(os.Stderr, err)
	os.Exit(1)
}

// FatalUnexpected reports err to stderr together with a captured stack
// trace and exits with status 1, mirroring the teacher's fallback path
// in main.go for errors that aren't one of the program's own known error
// kinds: `errors.Wrap(err, 0).ErrorStack()` followed by `log.Fatalf`.
func FatalUnexpected(err error) {
	wrapped := goerrors.Wrap(err, 1)
	Report(os.Stderr, New(wrapped.ErrorStack()))
	os.Exit(1)
}
