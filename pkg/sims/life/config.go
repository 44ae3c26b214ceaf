package life

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Seeding modes understood by Seed.
const (
	SeedingUniform = "uniform"
	SeedingPerlin  = "perlin"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("invalid life config")

// Config controls grid dimensions, seeding and the generation rate.
type Config struct {
	Width  int
	Height int

	// AliveChance is the probability that a cell starts alive.
	AliveChance float64
	// GenerationsPerSecond sets the driver loop rate.
	GenerationsPerSecond int

	Seed       int64
	Seeding    string
	NoiseScale float64
	Glider     bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:                80,
		Height:               30,
		AliveChance:          0.3,
		GenerationsPerSecond: 10,
		Seeding:              SeedingUniform,
		NoiseScale:           0.15,
		Glider:               true,
	}
}

// Interval is the pause between generations.
func (c Config) Interval() time.Duration {
	if c.GenerationsPerSecond <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.GenerationsPerSecond)
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.AliveChance < 0 || c.AliveChance > 1:
		return fmt.Errorf("%w: alive chance %v outside [0,1]", ErrInvalidConfig, c.AliveChance)
	case c.GenerationsPerSecond <= 0:
		return fmt.Errorf("%w: %d generations per second", ErrInvalidConfig, c.GenerationsPerSecond)
	case c.Seeding != SeedingUniform && c.Seeding != SeedingPerlin:
		return fmt.Errorf("%w: unknown seeding %q", ErrInvalidConfig, c.Seeding)
	case c.Seeding == SeedingPerlin && c.NoiseScale <= 0:
		return fmt.Errorf("%w: noise scale %v", ErrInvalidConfig, c.NoiseScale)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.AliveChance = parsed
		}
	}
	if v, ok := cfg["gps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GenerationsPerSecond = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seeding"]; ok && (v == SeedingUniform || v == SeedingPerlin) {
		c.Seeding = v
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.NoiseScale = parsed
		}
	}
	if v, ok := cfg["glider"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Glider = parsed
		}
	}
	return c
}
