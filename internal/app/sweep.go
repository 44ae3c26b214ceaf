package app

import (
	"cmp"
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"agelife/pkg/sims/life"
)

// SweepResult is the outcome of one seeded run.
type SweepResult struct {
	Seed  int64
	Final life.Stats
	// Peak is the largest population seen, including the seeded grid.
	Peak int
	// Extinct is the first generation with no live cells, or 0 if the run
	// never died out.
	Extinct uint64
}

// Sweep runs cfg once per seed for steps generations, at most workers at a
// time. Results are sorted by final population, largest first.
func Sweep(ctx context.Context, cfg life.Config, seeds []int64, steps, workers int) ([]SweepResult, error) {
	results := make([]SweepResult, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, seed := range seeds {
		g.Go(func() error {
			res, err := runSeed(ctx, cfg, seed, steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b SweepResult) int {
		if c := cmp.Compare(b.Final.Alive, a.Final.Alive); c != 0 {
			return c
		}
		return cmp.Compare(a.Seed, b.Seed)
	})
	return results, nil
}

func runSeed(ctx context.Context, cfg life.Config, seed int64, steps int) (SweepResult, error) {
	cfg.Seed = seed
	sim := life.New(cfg)
	res := SweepResult{Seed: seed, Peak: sim.Grid().Population()}
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		sim.Step()
		pop := sim.Grid().Population()
		if pop > res.Peak {
			res.Peak = pop
		}
		if pop == 0 && res.Extinct == 0 {
			res.Extinct = sim.Generation()
		}
	}
	res.Final = sim.Stats()
	return res, nil
}

// MeanAlivePercent averages the final alive percentage over results.
func MeanAlivePercent(results []SweepResult) float64 {
	if len(results) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range results {
		sum += r.Final.AlivePercent
	}
	return sum / float64(len(results))
}
