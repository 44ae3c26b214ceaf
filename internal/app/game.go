//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"agelife/internal/render"
	"agelife/internal/term"
	"agelife/internal/ui"
	"agelife/pkg/sims/life"
)

// Game adapts a life simulation to the ebiten.Game interface. Ebiten's TPS
// sets the generation rate.
type Game struct {
	sim     *life.Life
	painter *render.GridPainter
	overlay *ui.Overlay

	scale int
	// drawn is set once the current generation has reached the screen, so
	// no generation is stepped over unseen.
	drawn bool
}

// New constructs a Game for the provided simulation.
func New(sim *life.Life, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(size.H * scale),
		scale:   scale,
	}
}

// Update advances the simulation once the current generation was drawn.
func (g *Game) Update() error {
	if g.drawn {
		g.sim.Step()
		g.drawn = false
	}
	return nil
}

// Draw renders the current generation and its stats.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.RGBA(term.ColorGrey))
	g.painter.Blit(screen, g.sim.Grid(), g.scale)
	g.overlay.Draw(screen, g.sim.Stats())
	g.drawn = true
}

// Layout returns the logical screen size: the scaled grid plus the stats panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H*g.scale + ui.Height(ui.StatsLines)
}
