package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// relaxAll computes exact distances from src by relaxing every orthogonal
// edge until nothing changes. It reads roles and weights directly and does
// not touch the grid's cached adjacency.
func relaxAll(g *grid.Grid, src grid.Coord) []float64 {
	n := g.Size()
	dist := make([]float64, g.Len())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src.Row*n+src.Col] = 0

	offsets := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for changed := true; changed; {
		changed = false
		for i := range g.Cells() {
			if math.IsInf(dist[i], 1) {
				continue
			}
			r, c := g.Coordinate(i)
			for _, d := range offsets {
				nb := grid.Coord{Row: r + d[0], Col: c + d[1]}
				if !g.InBounds(nb) {
					continue
				}
				cell := g.MustAt(nb.Row, nb.Col)
				if cell.Role == grid.Barrier {
					continue
				}
				if alt := dist[i] + float64(cell.Weight); alt < dist[cell.Index] {
					dist[cell.Index] = alt
					changed = true
				}
			}
		}
	}

	return dist
}

// TestRun_MatchesReference compares both algorithms, with and without stale
// skipping, against exhaustive relaxation on random scattered boards.
func TestRun_MatchesReference(t *testing.T) {
	variants := []struct {
		name string
		opts []search.Option
	}{
		{"Dijkstra", []search.Option{search.WithAlgorithm(search.Dijkstra)}},
		{"DijkstraSkip", []search.Option{search.WithAlgorithm(search.Dijkstra), search.WithStaleSkip()}},
		{"AStar", []search.Option{search.WithAlgorithm(search.AStar)}},
		{"AStarSkip", []search.Option{search.WithAlgorithm(search.AStar), search.WithStaleSkip()}},
	}

	for seed := int64(1); seed <= 60; seed++ {
		rng := rand.New(rand.NewSource(seed))
		size := 3 + rng.Intn(6)
		g, err := grid.New(size, grid.WithRand(rng))
		require.NoError(t, err)

		s := grid.Coord{Row: rng.Intn(size), Col: rng.Intn(size)}
		e := s
		for e == s {
			e = grid.Coord{Row: rng.Intn(size), Col: rng.Intn(size)}
		}
		require.NoError(t, g.SetRole(s, grid.Start))
		require.NoError(t, g.SetRole(e, grid.End))
		g.Scatter(rng, 0.4)

		want := relaxAll(g, s)
		start, end := g.MustAt(s.Row, s.Col), g.MustAt(e.Row, e.Col)
		wantCost := want[end.Index]
		reachable, err := g.Connected(s, e)
		require.NoError(t, err)
		require.Equal(t, reachable, !math.IsInf(wantCost, 1), "seed %d", seed)

		for _, v := range variants {
			res, err := search.Run(g, start, end, v.opts...)
			require.NoError(t, err, "seed %d %s", seed, v.name)

			assert.Equal(t, reachable, res.Found, "seed %d %s", seed, v.name)
			assert.Equal(t, wantCost, res.TotalCost, "seed %d %s", seed, v.name)
			if res.Found {
				assertValidPath(t, res, start, end)
			} else {
				assert.Len(t, res.Path, 1)
			}
			// Every finalized cell holds its exact distance.
			for _, c := range res.Path[:len(res.Path)-1] {
				assert.Equal(t, want[c.Index], c.Distance, "seed %d %s cell %s", seed, v.name, c.Coord())
			}
		}
	}
}
