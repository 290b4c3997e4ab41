// Package search finds least-cost routes on a grid.Grid with Dijkstra's
// algorithm or A* under the Manhattan heuristic.
//
// Overview:
//
//   - Moving into a cell costs that cell's weight; the start cell's own weight
//     is never paid. Moves are orthogonal and barriers are impassable.
//   - Neighbors are discovered up, down, left, right. Frontier ties are broken
//     by insertion order, so a given board always yields the same route.
//   - Both algorithms return the same optimal cost. A* usually finalizes fewer
//     cells on the way.
//
// Observation:
//
//   - After each finalized cell the run calls an observe.Hook with the grid and
//     the current cell. The current cell is reported before it is marked
//     MarkClosed. Once the loop ends the Open/Closed marks of visited cells are
//     cleared and the hook is called once more with Final set.
//   - The interior of a found route is marked grid.MarkPath.
//
// Stale entries:
//
//   - The frontier uses lazy decrease-key. By default a cell popped again after
//     it was finalized is relaxed again, reported again and logged again in the
//     visited count. WithStaleSkip drops such pops. Paths and costs are the
//     same either way; only Visited and the number of hook calls change.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidInvocation:
//     nil grid, nil or foreign endpoint, barrier endpoint, or start == end.
//   - ErrUnknownAlgorithm:
//     ParseAlgorithm did not recognize its input.
//
// An unreachable end is not an error. Result.Found is false, Result.Path holds
// only the start cell and Result.TotalCost is +Inf.
//
// Complexity:
//
//   - Time:  O(N log N) for N = Size² cells.
//   - Space: O(N).
package search
