package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Manhattan is the A* heuristic |Δrow| + |Δcol|. With orthogonal moves and
// weights ≥ 1 it is admissible and consistent.
func Manhattan(a, b *grid.Cell) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

// ReconstructPath follows Parent links from end until a cell without a
// parent, then prepends start. After a successful run the result runs
// start…end; when end was never reached it is just [start].
//
// It does not mutate any cell. The walk is capped at g.Len() links, so a
// corrupted parent chain cannot loop forever.
func ReconstructPath(g *grid.Grid, end, start *grid.Cell) []*grid.Cell {
	var rev []*grid.Cell
	if g != nil {
		for cur := end; cur != nil && cur.HasParent() && len(rev) < g.Len(); cur = g.ParentOf(cur) {
			rev = append(rev, cur)
		}
	}
	rev = append(rev, start)

	path := make([]*grid.Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}

	return path
}

// PathCost sums the weights of every cell after the first, which is the
// distance a run assigns to the last cell of a path it produced.
func PathCost(path []*grid.Cell) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += float64(path[i].Weight)
	}

	return total
}
