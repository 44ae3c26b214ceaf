package core

import (
	"context"
	"time"
)

const defaultTPS = 10

// Pacer spaces simulation steps a fixed interval apart.
type Pacer struct {
	step time.Duration
}

// NewPacer constructs a Pacer targeting the given ticks per second.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	return p
}

// SetTPS changes the tick rate.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = defaultTPS
	}
	p.step = time.Second / time.Duration(tps)
}

// Step returns the interval between ticks.
func (p *Pacer) Step() time.Duration { return p.step }

// Wait blocks for one interval. It returns ctx.Err() if ctx ends first.
func (p *Pacer) Wait(ctx context.Context) error {
	timer := time.NewTimer(p.step)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
