package draw

// Color is an index into the terminal's 256-color palette.
// The zero value means "unset" and is skipped when rendering,
// so the palette below never uses index 0.
type Color uint8

// Game palette, chosen to approximate the original Focus Catcher colors
// in the xterm 256-color cube.
const (
	ColorNone     Color = 0
	ColorWhite    Color = 231
	ColorRed      Color = 203 // soft red
	ColorGreen    Color = 79  // teal green
	ColorBlue     Color = 74  // sky blue
	ColorYellow   Color = 220
	ColorOrange   Color = 208
	ColorGray     Color = 247
	ColorDarkGray Color = 244
	ColorDimGray  Color = 251
	ColorBackdrop Color = 60 // muted indigo, background pattern dots
)

// TargetColors are the bright colors used for catchable target shapes.
var TargetColors = []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorOrange}

// DistractorColors are the muted colors used for distractor shapes.
var DistractorColors = []Color{ColorGray, ColorDarkGray, ColorDimGray}

// Foreground returns the ANSI escape sequence selecting c as foreground.
func (c Color) Foreground() string {
	return "\033[38;5;" + itoa(uint8(c)) + "m"
}

// Background returns the ANSI escape sequence selecting c as background.
func (c Color) Background() string {
	return "\033[48;5;" + itoa(uint8(c)) + "m"
}

// ResetColor is the ANSI sequence clearing all color attributes.
const ResetColor = "\033[0m"

// itoa formats a uint8 without allocating through strconv.Itoa's int path.
func itoa(n uint8) string {
	if n < 10 {
		return string([]byte{'0' + n})
	}
	if n < 100 {
		return string([]byte{'0' + n/10, '0' + n%10})
	}
	return string([]byte{'0' + n/100, '0' + n/10%10, '0' + n%10})
}
