// Package draw renders game graphics to the terminal using half-block
// characters, giving the canvas double vertical resolution and per-pixel
// 256-color support.
package draw

import (
	"fmt"
	"io"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockMedium    = '▒'
	BlockDark      = '▓'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor moves cursor to a specific position (1-based).
func MoveCursor(w io.Writer, x, y int) {
	fmt.Fprintf(w, "\033[%d;%dH", y, x)
}

// EnableMouse turns on button-event mouse tracking with SGR encoding.
// Call DisableMouse before restoring the terminal.
func EnableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1002h\033[?1006h")
}

// DisableMouse turns off mouse tracking.
func DisableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1006l\033[?1002l")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
