package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams carries the standard streams for a command, so tests can swap
// them out.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// StandardStreams returns IOStreams wired to the process streams.
func StandardStreams() IOStreams {
	return IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
}

// IsInteractive reports whether the reader is a terminal. Editors take over
// the terminal, so commands refuse to launch one when stdin is piped.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
