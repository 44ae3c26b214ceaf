//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"agelife/internal/app"
	"agelife/internal/ui"
	"agelife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lc := cfg.Life()
	if lc.Seed == 0 {
		lc.Seed = time.Now().UnixNano()
	}
	if err := lc.Validate(); err != nil {
		log.Fatal(err)
	}

	sim := life.New(lc)
	game := app.New(sim, cfg.Scale)
	size := sim.Size()

	ebiten.SetWindowTitle("agelife — " + sim.Name())
	ebiten.SetTPS(lc.GenerationsPerSecond)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale+ui.Height(ui.StatsLines))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
