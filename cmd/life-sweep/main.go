package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"agelife/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 500, "generations to simulate per seed")
	seeds := flag.Int("seeds", 64, "number of seeds to run, starting at -seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "results to print")
	flag.Parse()

	lc := cfg.Life()
	if err := lc.Validate(); err != nil {
		log.Fatal(err)
	}

	list := make([]int64, *seeds)
	for i := range list {
		list[i] = lc.Seed + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d seeds on %dx%d (%d workers, %d steps, %s seeding)\n",
		len(list), lc.Width, lc.Height, *workers, *steps, lc.Seeding)

	start := time.Now()
	results, err := app.Sweep(ctx, lc, list, *steps, *workers)
	if err != nil {
		stop()
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		extinct := "-"
		if res.Extinct > 0 {
			extinct = fmt.Sprint(res.Extinct)
		}
		fmt.Printf("%2d) seed=%d alive=%d (%.2f%%) peak=%d extinct=%s\n",
			i+1, res.Seed, res.Final.Alive, res.Final.AlivePercent, res.Peak, extinct)
	}

	fmt.Printf("\nMean alive after %d generations: %.2f%%\n", *steps, app.MeanAlivePercent(results))
}
