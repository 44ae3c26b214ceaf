package app

import (
	"flag"

	"agelife/pkg/sims/life"
)

// Terminal backends selectable with -term.
const (
	TermTCell = "tcell"
	TermANSI  = "ansi"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width      int
	Height     int
	Chance     float64
	GPS        int
	Seed       int64
	Seeding    string
	NoiseScale float64
	Glider     bool

	Term  string
	Scale int
}

// NewConfig returns a Config populated with the simulation defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Width:      d.Width,
		Height:     d.Height,
		Chance:     d.AliveChance,
		GPS:        d.GenerationsPerSecond,
		Seed:       d.Seed,
		Seeding:    d.Seeding,
		NoiseScale: d.NoiseScale,
		Glider:     d.Glider,
		Term:       TermTCell,
		Scale:      8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.Chance, "chance", c.Chance, "probability a cell starts alive")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid (0 picks one from the clock)")
	fs.StringVar(&c.Seeding, "seeding", c.Seeding, "initial layout: uniform or perlin")
	fs.Float64Var(&c.NoiseScale, "noise-scale", c.NoiseScale, "perlin sample spacing per cell")
	fs.BoolVar(&c.Glider, "glider", c.Glider, "stamp a glider at the origin")
	fs.StringVar(&c.Term, "term", c.Term, "terminal backend: tcell or ansi")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the window")
}

// Life converts the flags into a simulation config.
func (c *Config) Life() life.Config {
	return life.Config{
		Width:                c.Width,
		Height:               c.Height,
		AliveChance:          c.Chance,
		GenerationsPerSecond: c.GPS,
		Seed:                 c.Seed,
		Seeding:              c.Seeding,
		NoiseScale:           c.NoiseScale,
		Glider:               c.Glider,
	}
}
