package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"

	"agelife/pkg/sims/life"
)

// countingWaiter cancels after limit waits.
type countingWaiter struct {
	calls  int
	limit  int
	cancel context.CancelFunc
}

func (w *countingWaiter) Wait(ctx context.Context) error {
	w.calls++
	if w.calls >= w.limit {
		w.cancel()
	}
	return ctx.Err()
}

func smallConfig() life.Config {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 8, 6
	cfg.Seed = 21
	return cfg
}

func TestDriverRunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	sim := life.New(smallConfig())
	pace := &countingWaiter{limit: 3, cancel: cancel}
	a, closeTerm, err := OpenTerminal(TermANSI, &out, cancel)
	if err != nil {
		t.Fatalf("OpenTerminal: %v", err)
	}

	if err := NewDriver(sim, a, pace).Run(ctx); err != nil {
		t.Fatalf("Run() = %v, want nil after cancellation", err)
	}
	if err := closeTerm(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if sim.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", sim.Generation())
	}
	text := out.String()
	for _, want := range []string{"Generation: 0", "Generation: 1", "Generation: 2", "Total cells: 48"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q", want)
		}
	}
	if strings.Contains(text, "Generation: 3") {
		t.Fatal("generation 3 drawn after cancellation")
	}
	if n := strings.Count(text, "\x1b[2J"); n != 3 {
		t.Fatalf("screen cleared %d times, want 3", n)
	}
}

func TestDriverTickRendersBeforeStep(t *testing.T) {
	cfg := smallConfig()
	var out bytes.Buffer
	a, _, err := OpenTerminal(TermANSI, &out, func() {})
	if err != nil {
		t.Fatal(err)
	}
	sim := life.New(cfg)
	before := sim.Grid().Clone()

	if err := NewDriver(sim, a, nil).Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	alive := strings.Count(out.String(), "■")
	if alive != before.Population() {
		t.Fatalf("drew %d live glyphs, seeded grid has %d", alive, before.Population())
	}
	if !sim.Grid().Equal(life.Step(before)) {
		t.Fatal("Tick did not advance to the next generation")
	}
}

type brokenWriter struct{}

var errBroken = errors.New("terminal closed")

func (brokenWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestDriverStopsOnTerminalFailure(t *testing.T) {
	a, _, err := OpenTerminal(TermANSI, brokenWriter{}, func() {})
	if err != nil {
		t.Fatal(err)
	}
	sim := life.New(smallConfig())
	pace := &countingWaiter{limit: 100, cancel: func() {}}

	err = NewDriver(sim, a, pace).Run(context.Background())
	if !errors.Is(err, errBroken) {
		t.Fatalf("Run() = %v, want %v", err, errBroken)
	}
	if pace.calls != 0 || sim.Generation() != 0 {
		t.Fatalf("loop continued after failure: waits=%d generation=%d", pace.calls, sim.Generation())
	}
}

func TestOpenTerminalUnknown(t *testing.T) {
	if _, _, err := OpenTerminal("vt52", nil, func() {}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-w", "40", "-h", "12", "-chance", "0.5", "-gps", "20", "-seed", "9", "-seeding", "perlin", "-glider=false", "-term", "ansi"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	lc := cfg.Life()
	if lc.Width != 40 || lc.Height != 12 || lc.AliveChance != 0.5 || lc.GenerationsPerSecond != 20 {
		t.Fatalf("life config = %+v", lc)
	}
	if lc.Seed != 9 || lc.Seeding != life.SeedingPerlin || lc.Glider || cfg.Term != TermANSI {
		t.Fatalf("life config = %+v term=%s", lc, cfg.Term)
	}
	if err := lc.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestConfigDefaultsMatchLife(t *testing.T) {
	if got, want := NewConfig().Life(), life.DefaultConfig(); got != want {
		t.Fatalf("flag defaults %+v differ from %+v", got, want)
	}
}
