package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is a terminal, counting Cygwin and MSYS
// ptys on Windows.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorDisabled reports whether colored output should be turned off for f,
// either because the user asked for it or because f is not a terminal.
func ColorDisabled(f *os.File, noColor bool) bool {
	return noColor || !IsTerminal(f)
}
