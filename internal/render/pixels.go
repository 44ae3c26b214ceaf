package render

import "agelife/pkg/sims/life"

// fillCellsRGBA converts cells into RGBA pixels in buf using the age palette.
func fillCellsRGBA(buf []byte, cells []life.Cell) {
	for i, c := range cells {
		col := RGBA(ColorFor(c))
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
