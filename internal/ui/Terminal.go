package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// TerminalSize reports the size of the terminal behind f.
func TerminalSize(f *os.File) (int, int, error) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("get size of %s: %w", f.Name(), err)
	}
	return width, height, nil
}

func stdoutSize() (int, int, error) {
	return TerminalSize(os.Stdout)
}
