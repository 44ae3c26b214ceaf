package render

import (
	"fmt"

	"agelife/internal/term"
	"agelife/pkg/sims/life"
)

// StatsLines formats s the way it is printed under the grid.
func StatsLines(s life.Stats) []string {
	return []string{
		fmt.Sprintf("Generation: %d", s.Generation),
		fmt.Sprintf("Alive cells: %d (%.2f%%)", s.Alive, s.AlivePercent),
		fmt.Sprintf("Dead cells: %d", s.Dead),
		fmt.Sprintf("Total cells: %d", s.Total),
	}
}

// Frame draws grids and their stats onto a Terminal.
type Frame struct {
	t term.Terminal
}

// NewFrame returns a Frame drawing to t.
func NewFrame(t term.Terminal) *Frame {
	return &Frame{t: t}
}

// Clear blanks the terminal before a new frame.
func (f *Frame) Clear() error {
	if err := f.t.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	return nil
}

// Grid draws every cell of g in row-major order and flushes.
func (f *Frame) Grid(g *life.Grid) error {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			if err := f.t.MoveTo(x, y); err != nil {
				return fmt.Errorf("move to (%d,%d): %w", x, y, err)
			}
			if err := f.t.SetForeground(ColorFor(c)); err != nil {
				return fmt.Errorf("set color: %w", err)
			}
			if err := f.t.WriteString(Glyph(c)); err != nil {
				return fmt.Errorf("draw cell (%d,%d): %w", x, y, err)
			}
		}
	}
	if err := f.t.Flush(); err != nil {
		return fmt.Errorf("flush grid: %w", err)
	}
	return nil
}

// Stats prints s on the rows starting at row, in the neutral color.
func (f *Frame) Stats(s life.Stats, row int) error {
	if err := f.t.SetForeground(term.ColorGrey); err != nil {
		return fmt.Errorf("set color: %w", err)
	}
	for i, line := range StatsLines(s) {
		if err := f.t.MoveTo(0, row+i); err != nil {
			return fmt.Errorf("move to stats line %d: %w", i, err)
		}
		if err := f.t.WriteString(line); err != nil {
			return fmt.Errorf("print stats: %w", err)
		}
	}
	if err := f.t.Flush(); err != nil {
		return fmt.Errorf("flush stats: %w", err)
	}
	return nil
}
