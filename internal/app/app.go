package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"agelife/internal/render"
	"agelife/internal/term"
	"agelife/pkg/sims/life"
)

// Waiter blocks between generations.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Driver runs the clear, render, stats, step, wait loop against a terminal.
type Driver struct {
	sim   *life.Life
	frame *render.Frame
	pace  Waiter
}

// NewDriver wires a simulation to a terminal.
func NewDriver(sim *life.Life, t term.Terminal, pace Waiter) *Driver {
	return &Driver{sim: sim, frame: render.NewFrame(t), pace: pace}
}

// Tick draws the current generation with its stats, then steps once.
func (d *Driver) Tick() error {
	g := d.sim.Grid()
	if err := d.frame.Clear(); err != nil {
		return err
	}
	if err := d.frame.Grid(g); err != nil {
		return err
	}
	if err := d.frame.Stats(d.sim.Stats(), g.H); err != nil {
		return err
	}
	d.sim.Step()
	return nil
}

// Run loops until ctx ends, which returns nil, or a terminal operation
// fails, which returns that error.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := d.Tick(); err != nil {
			return err
		}
		if err := d.pace.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// OpenTerminal opens the named backend. The ansi backend writes to out.
// For tcell, cancel fires when the user presses Ctrl-C or Escape. The
// returned close function restores the terminal.
func OpenTerminal(kind string, out io.Writer, cancel func()) (term.Terminal, func() error, error) {
	switch kind {
	case TermANSI:
		a := term.NewANSI(out)
		return a, a.Close, nil
	case TermTCell:
		s, err := term.NewScreen()
		if err != nil {
			return nil, nil, err
		}
		go s.Interrupts(cancel)
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown terminal backend %q", kind)
	}
}
