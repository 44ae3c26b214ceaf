//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"agelife/internal/render"
	"agelife/pkg/sims/life"
)

// Overlay draws the stats panel under the grid.
type Overlay struct {
	top int
	fg  color.Color
}

// NewOverlay constructs an overlay whose panel starts at pixel row top.
func NewOverlay(top int) *Overlay {
	return &Overlay{top: top, fg: color.RGBA{R: 200, G: 200, B: 210, A: 255}}
}

// Draw renders the stats lines onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, s life.Stats) {
	face := basicfont.Face7x13
	for i, line := range render.StatsLines(s) {
		text.Draw(screen, line, face, panelPadding, baseline(o.top, i), o.fg)
	}
}
