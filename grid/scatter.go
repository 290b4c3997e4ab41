package grid

import (
	"math/rand"
	"time"
)

// Scatter randomizes the board the way the visualizer's "Random" action
// does. Every cell that is neither Start nor End draws its own barrier
// chance uniformly from [0, maxChance); with that probability it becomes a
// Barrier, otherwise it becomes Empty with a freshly drawn weight.
//
// maxChance is clamped to [0, 1]. A nil rng uses a time-seeded source.
// Returns the number of barriers placed. Neighbors are stale afterwards.
func (g *Grid) Scatter(rng *rand.Rand, maxChance float64) int {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	maxChance = min(max(maxChance, 0), 1)

	placed := 0
	for i := range g.cells {
		c := &g.cells[i]
		if c.Role == Start || c.Role == End {
			continue
		}
		chance := rng.Float64() * maxChance
		if rng.Float64() < chance {
			c.Role = Barrier
			placed++
			continue
		}
		c.Weight = g.weights[rng.Intn(len(g.weights))]
		c.Role = Empty
	}

	return placed
}
