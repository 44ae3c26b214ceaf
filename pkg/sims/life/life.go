package life

import "agelife/pkg/core"

// LiveNeighbors counts live cells among the eight toroidal neighbours of (x, y).
func LiveNeighbors(g *Grid, x, y int) int {
	w, h := g.W, g.H
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			if g.cells[ny*w+nx].Alive {
				neighbors++
			}
		}
	}
	return neighbors
}

// Rule returns the next state of c given its live neighbour count.
func Rule(c Cell, neighbors int) Cell {
	switch {
	case c.Alive && (neighbors == 2 || neighbors == 3):
		age := c.Age
		if age < MaxAge {
			age++
		}
		return Cell{Alive: true, Age: age}
	case !c.Alive && neighbors == 3:
		return Cell{Alive: true}
	default:
		return Cell{}
	}
}

// Next writes the generation following src into dst. Every cell reads
// neighbours from src only, so dst must not alias src.
func Next(src, dst *Grid) {
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			idx := src.Index(x, y)
			dst.cells[idx] = Rule(src.cells[idx], LiveNeighbors(src, x, y))
		}
	}
}

// Step returns a new grid holding the generation after g.
func Step(g *Grid) *Grid {
	next := NewGrid(g.W, g.H)
	Next(g, next)
	return next
}

// Life runs a grid forward one generation at a time, keeping a spare
// buffer so each step reads the previous generation in full.
type Life struct {
	cfg Config
	cur *Grid
	nxt *Grid
	gen uint64
}

// New returns a Life seeded from cfg.
func New(cfg Config) *Life {
	l := &Life{cfg: cfg}
	l.Reset(cfg.Seed)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid exposes the current generation. It is only valid until the next Step.
func (l *Life) Grid() *Grid { return l.cur }

// Generation returns how many steps have run since the last Reset.
func (l *Life) Generation() uint64 { return l.gen }

// Stats summarises the current generation.
func (l *Life) Stats() Stats { return Measure(l.cur, l.gen) }

// Reset reseeds the board with the provided seed and rewinds the counter.
func (l *Life) Reset(seed int64) {
	cfg := l.cfg
	cfg.Seed = seed
	l.cur = Seed(cfg)
	l.nxt = NewGrid(cfg.Width, cfg.Height)
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Next(l.cur, l.nxt)
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}
