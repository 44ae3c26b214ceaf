package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agelife/internal/app"
	"agelife/internal/core"
	"agelife/pkg/sims/life"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t, closeTerm, err := app.OpenTerminal(cfg.Term, os.Stdout, stop)
	if err != nil {
		log.Fatalf("opening terminal: %v", err)
	}

	drv := app.NewDriver(life.New(lc), t, core.NewPacer(lc.GenerationsPerSecond))
	err = drv.Run(ctx)
	if cerr := closeTerm(); err == nil {
		err = cerr
	}
	if err != nil {
		stop()
		log.Fatal(err)
	}
}
