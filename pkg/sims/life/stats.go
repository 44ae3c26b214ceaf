package life

// Stats is a snapshot of population counts for one generation.
type Stats struct {
	Generation   uint64
	Alive        int
	Dead         int
	Total        int
	AlivePercent float64
}

// Measure computes Stats for g at the given generation.
func Measure(g *Grid, generation uint64) Stats {
	total := len(g.cells)
	alive := g.Population()
	pct := 0.0
	if total > 0 {
		pct = float64(alive) / float64(total) * 100
	}
	return Stats{
		Generation:   generation,
		Alive:        alive,
		Dead:         total - alive,
		Total:        total,
		AlivePercent: pct,
	}
}
