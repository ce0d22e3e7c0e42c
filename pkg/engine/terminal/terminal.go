// Package terminal reports the size and capabilities of the terminal an
// io.Writer is attached to.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

func fd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

// IsTerminal reports whether w is an interactive terminal. Buffers, pipes
// and regular files are not.
func IsTerminal(w io.Writer) bool {
	n, ok := fd(w)
	return ok && term.IsTerminal(n)
}

// GetSize returns the width and height of the terminal behind w.
// Falls back to defaults if the size cannot be determined.
func GetSize(w io.Writer) (width, height int) {
	n, ok := fd(w)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(n)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the width of the terminal behind w.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth(w io.Writer) int {
	width, _ := GetSize(w)
	return width
}
