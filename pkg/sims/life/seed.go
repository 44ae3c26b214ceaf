package life

import (
	"cmp"
	"math"
	"slices"

	"github.com/aquilax/go-perlin"

	"agelife/pkg/core"
)

// Glider lists the (x, y) offsets of the glider stamped at the origin.
var Glider = [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

const (
	perlinAlpha  = 2
	perlinBeta   = 2
	perlinOctave = 3
)

// Seed builds the starting grid for cfg. Cells are seeded according to
// cfg.Seeding and the glider is stamped on top when cfg.Glider is set.
func Seed(cfg Config) *Grid {
	g := NewGrid(cfg.Width, cfg.Height)
	switch cfg.Seeding {
	case SeedingPerlin:
		seedPerlin(g, cfg)
	default:
		seedUniform(g, core.NewRNG(cfg.Seed), cfg.AliveChance)
	}
	if cfg.Glider {
		Stamp(g, 0, 0, Glider)
	}
	return g
}

// Stamp forces the cells at (ox+dx, oy+dy) alive with age zero.
func Stamp(g *Grid, ox, oy int, pattern [][2]int) {
	for _, p := range pattern {
		g.Set(ox+p[0], oy+p[1], Cell{Alive: true})
	}
}

func seedUniform(g *Grid, rng *core.RNG, chance float64) {
	cells := g.Cells()
	for i := range cells {
		cells[i] = Cell{Alive: rng.Chance(chance)}
	}
}

// seedPerlin marks the AliveChance fraction of cells with the lowest noise
// values alive, so live cells form clusters at the requested density.
func seedPerlin(g *Grid, cfg Config) {
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, cfg.Seed)
	levels := make([]float64, len(g.cells))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			// Sample between lattice points; Perlin noise is zero on them.
			levels[g.Index(x, y)] = noise.Noise2D((float64(x)+0.5)*cfg.NoiseScale, (float64(y)+0.5)*cfg.NoiseScale)
		}
	}

	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(levels[a], levels[b]) })

	alive := int(math.Round(cfg.AliveChance * float64(len(order))))
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
	for _, i := range order[:alive] {
		g.cells[i].Alive = true
	}
}
