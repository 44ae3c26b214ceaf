package life

import (
	"math"

	"agelife/pkg/core"
)

// MaxAge is the age a cell saturates at.
const MaxAge = math.MaxUint8

// Cell is a single grid position. Age counts consecutive generations
// survived and is zero for dead and newborn cells.
type Cell struct {
	Alive bool
	Age   uint8
}

// Grid stores one generation of cells in row-major order.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.W, H: g.H} }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the cell at column x, row y. Coordinates wrap.
func (g *Grid) At(x, y int) Cell {
	x, y = g.Size().Wrap(x, y)
	return g.cells[g.Index(x, y)]
}

// Set stores c at column x, row y. Coordinates wrap.
func (g *Grid) Set(x, y int, c Cell) {
	x, y = g.Size().Wrap(x, y)
	g.cells[g.Index(x, y)] = c
}

// Alive reports whether the cell at (x, y) is alive. Coordinates wrap.
func (g *Grid) Alive(x, y int) bool { return g.At(x, y).Alive }

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.Alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, cells: append([]Cell(nil), g.cells...)}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}
