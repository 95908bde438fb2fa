// Package sys provide system utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// WinSize queries the size of the terminal referenced by the given file. It
// returns -1, -1 when the size cannot be determined.
func WinSize(file *os.File) (row, col int) { return winSize(file) }

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TermWidth returns the width of the terminal referenced by file, or 0 if it
// is not a terminal.
func TermWidth(file *os.File) int {
	if !IsATTY(file.Fd()) {
		return 0
	}
	if _, col := WinSize(file); col > 0 {
		return col
	}
	return 0
}
