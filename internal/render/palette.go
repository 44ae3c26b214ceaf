package render

import (
	"image/color"

	"agelife/internal/term"
	"agelife/pkg/sims/life"
)

// Glyphs drawn for live and dead cells.
const (
	GlyphAlive = "■"
	GlyphDead  = " "
)

// ColorFor maps a cell to its foreground color. Live cells shift from
// white towards magenta as they age; dead cells are grey.
func ColorFor(c life.Cell) term.Color {
	if !c.Alive {
		return term.ColorGrey
	}
	switch {
	case c.Age <= 1:
		return term.ColorWhite
	case c.Age <= 3:
		return term.ColorYellow
	case c.Age <= 6:
		return term.ColorGreen
	case c.Age <= 10:
		return term.ColorCyan
	case c.Age <= 15:
		return term.ColorBlue
	default:
		return term.ColorMagenta
	}
}

// Glyph returns the character drawn for c.
func Glyph(c life.Cell) string {
	if c.Alive {
		return GlyphAlive
	}
	return GlyphDead
}

var rgba = map[term.Color]color.RGBA{
	term.ColorGrey:    {R: 20, G: 20, B: 24, A: 255},
	term.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
	term.ColorYellow:  {R: 255, G: 255, B: 85, A: 255},
	term.ColorGreen:   {R: 85, G: 255, B: 85, A: 255},
	term.ColorCyan:    {R: 85, G: 255, B: 255, A: 255},
	term.ColorBlue:    {R: 85, G: 85, B: 255, A: 255},
	term.ColorMagenta: {R: 255, G: 85, B: 255, A: 255},
}

// RGBA returns the pixel color used for c in windowed rendering. Grey is
// drawn near-black so dead cells read as background.
func RGBA(c term.Color) color.RGBA {
	return rgba[c]
}
