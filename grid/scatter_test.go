package grid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestScatter_KeepsEndpoints ensures Start and End survive any scatter.
func TestScatter_KeepsEndpoints(t *testing.T) {
	g, err := grid.New(10, grid.WithSeed(2))
	require.NoError(t, err)
	require.NoError(t, g.SetRole(grid.Coord{Row: 0, Col: 0}, grid.Start))
	require.NoError(t, g.SetRole(grid.Coord{Row: 9, Col: 9}, grid.End))

	placed := g.Scatter(rand.New(rand.NewSource(2)), 1)
	assert.Equal(t, placed, len(g.Find(grid.Barrier)))
	assert.Positive(t, placed)
	assert.Equal(t, grid.Start, g.MustAt(0, 0).Role)
	assert.Equal(t, grid.End, g.MustAt(9, 9).Role)
}

// TestScatter_Deterministic checks that one seed yields one layout.
func TestScatter_Deterministic(t *testing.T) {
	build := func() *grid.Grid {
		g, err := grid.New(12, grid.WithSeed(8))
		require.NoError(t, err)
		g.Scatter(rand.New(rand.NewSource(99)), grid.DefaultScatter)

		return g
	}
	a, b := build(), build()
	for i := range a.Cells() {
		assert.Equal(t, a.Cells()[i].Role, b.Cells()[i].Role)
		assert.Equal(t, a.Cells()[i].Weight, b.Cells()[i].Weight)
	}
}

// TestScatter_ZeroChance clears old barriers and places none.
func TestScatter_ZeroChance(t *testing.T) {
	g, err := grid.New(5, grid.WithSeed(4), grid.WithWeights(2, 5))
	require.NoError(t, err)
	require.NoError(t, g.SetRole(grid.Coord{Row: 2, Col: 2}, grid.Barrier))

	assert.Zero(t, g.Scatter(rand.New(rand.NewSource(4)), 0))
	assert.Empty(t, g.Find(grid.Barrier))
	for _, c := range g.Cells() {
		assert.Contains(t, []int{2, 5}, c.Weight)
	}
}

// TestScatter_Clamped treats chances above one as one; every cell then has
// a chance drawn from [0,1), so some but rarely all become barriers.
func TestScatter_Clamped(t *testing.T) {
	g, err := grid.New(20, grid.WithSeed(6))
	require.NoError(t, err)

	placed := g.Scatter(rand.New(rand.NewSource(6)), 7)
	assert.Positive(t, placed)
	assert.Less(t, placed, g.Len())
}
