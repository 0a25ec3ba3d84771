package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to an interactive terminal.
// FORCE_COLOR set to anything other than "0" forces a positive answer, which
// is handy when piping a demo through tools that still render ANSI.
func IsTerminal(f *os.File) bool {
	if force := os.Getenv("FORCE_COLOR"); force != "" && force != "0" {
		return true
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
