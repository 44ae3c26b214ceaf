//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"agelife/pkg/sims/life"
)

// GridPainter updates a single RGBA image from a life grid.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, scale int) {
	if g.W != gp.w || g.H != gp.h {
		return
	}
	fillCellsRGBA(gp.buf, g.Cells())
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
