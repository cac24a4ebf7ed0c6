package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/chrisant996/dirx/internal/locale"
	"github.com/chrisant996/dirx/internal/scan"
)

// defaultTerminalWidth is used when stdout isn't a terminal (piped or
// redirected), matching a conventional 80-column fallback. The COLUMNS
// environment variable is not consulted.
const defaultTerminalWidth = 80

// terminalWidth resolves the column budget wide-mode packing and
// auto-width filename fields measure against.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTerminalWidth
}

// printVolumeBegin writes the "Directory of ..." header a new volume
// starts with, grounded on original_source/formatter.cpp's volume
// header line.
func printVolumeBegin(w io.Writer, dir string) {
	fmt.Fprintf(w, "\n Directory of %s\n\n", dir)
}

// printVolumeEnd writes the file/directory count footer a volume ends
// with, grounded on original_source/formatter.cpp's FormatFileTotals and
// directory-count footer.
func printVolumeEnd(w io.Writer, loc *locale.Locale, totals scan.Totals) {
	fmt.Fprintf(w, "%15s File(s) %14s bytes\n",
		loc.GroupThousands(fmt.Sprintf("%d", totals.Files)),
		loc.GroupThousands(fmt.Sprintf("%d", totals.Bytes)))
	fmt.Fprintf(w, "%15s Dir(s)\n",
		loc.GroupThousands(fmt.Sprintf("%d", totals.Dirs)))
}
