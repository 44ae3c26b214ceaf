package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPacerStep(t *testing.T) {
	cases := map[int]time.Duration{
		10:  100 * time.Millisecond,
		4:   250 * time.Millisecond,
		0:   100 * time.Millisecond,
		-3:  100 * time.Millisecond,
		100: 10 * time.Millisecond,
	}
	for tps, want := range cases {
		if got := NewPacer(tps).Step(); got != want {
			t.Fatalf("NewPacer(%d).Step() = %s, want %s", tps, got, want)
		}
	}
}

func TestPacerWaitElapses(t *testing.T) {
	p := NewPacer(200)
	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < p.Step() {
		t.Fatalf("Wait returned after %s, want at least %s", elapsed, p.Step())
	}
}

func TestPacerWaitCancelled(t *testing.T) {
	p := NewPacer(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait() = %v, want context.Canceled", err)
	}
}
