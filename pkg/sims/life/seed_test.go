package life

import "testing"

func TestSeedDimensionsAndAges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	g := Seed(cfg)
	if g.W != 80 || g.H != 30 || len(g.Cells()) != 2400 {
		t.Fatalf("seeded grid %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
	for i, c := range g.Cells() {
		if c.Age != 0 {
			t.Fatalf("cell %d starts at age %d", i, c.Age)
		}
	}
}

func TestSeedForcesGlider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AliveChance = 0
	g := Seed(cfg)
	if pop := g.Population(); pop != len(Glider) {
		t.Fatalf("population = %d, want only the glider", pop)
	}
	for _, p := range Glider {
		if !g.Alive(p[0], p[1]) {
			t.Fatalf("glider cell %v not alive", p)
		}
	}

	cfg.Glider = false
	if pop := Seed(cfg).Population(); pop != 0 {
		t.Fatalf("population without glider = %d, want 0", pop)
	}
}

func TestSeedFullChance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AliveChance = 1
	if pop := Seed(cfg).Population(); pop != cfg.Width*cfg.Height {
		t.Fatalf("population = %d, want every cell", pop)
	}
}

func TestSeedDeterministic(t *testing.T) {
	for _, mode := range []string{SeedingUniform, SeedingPerlin} {
		cfg := DefaultConfig()
		cfg.Seeding = mode
		cfg.Glider = false
		cfg.Seed = 99
		a, b := Seed(cfg), Seed(cfg)
		if !a.Equal(b) {
			t.Fatalf("%s seeding not deterministic", mode)
		}
		cfg.Seed = 100
		if a.Equal(Seed(cfg)) {
			t.Fatalf("%s seeding ignored the seed", mode)
		}
	}
}

func TestSeedUniformDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 200
	cfg.Glider = false
	cfg.Seed = 8
	pct := Measure(Seed(cfg), 0).AlivePercent
	if pct < 27 || pct > 33 {
		t.Fatalf("uniform density = %.2f%%, want near 30%%", pct)
	}
}

func TestSeedPerlinDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seeding = SeedingPerlin
	cfg.Glider = false
	cfg.Seed = 4
	if pop := Seed(cfg).Population(); pop != 720 {
		t.Fatalf("perlin population = %d, want 30%% of 2400", pop)
	}
}
