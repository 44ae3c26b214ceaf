// Package term is the terminal output boundary: clearing, cursor placement,
// foreground colors, text and flushing.
package term

// Color is a named foreground color.
type Color uint8

const (
	ColorGrey Color = iota
	ColorWhite
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorMagenta
)

var colorNames = [...]string{"grey", "white", "yellow", "green", "cyan", "blue", "magenta"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// Index returns the xterm palette index of c.
func (c Color) Index() int {
	switch c {
	case ColorWhite:
		return 15
	case ColorYellow:
		return 11
	case ColorGreen:
		return 10
	case ColorCyan:
		return 14
	case ColorBlue:
		return 12
	case ColorMagenta:
		return 13
	default:
		return 7
	}
}

// Terminal is the set of output operations a frame is drawn with.
type Terminal interface {
	// Clear blanks the screen and homes the cursor.
	Clear() error
	// MoveTo places the cursor at a zero-based column and row.
	MoveTo(col, row int) error
	SetForeground(c Color) error
	WriteString(s string) error
	// Flush makes everything written so far visible.
	Flush() error
}
