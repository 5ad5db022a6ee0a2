package main

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isInteractiveEnvironment reports whether w is a terminal a person is reading.
func isInteractiveEnvironment(w io.Writer) bool {
	if os.Getenv("CI") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
