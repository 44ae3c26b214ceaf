package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in a grid of this size.
func (s Size) Cells() int { return s.W * s.H }

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Size) Wrap(x, y int) (int, int) {
	x = (x%s.W + s.W) % s.W
	y = (y%s.H + s.H) % s.H
	return x, y
}
