package termio

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal determines whether a given file (e.g. stdout) is attached to a
// terminal, in which case ANSI escapes can be used.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
