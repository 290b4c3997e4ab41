package search

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/observe"
)

// Run searches g from start to end and returns the route and run statistics.
//
// Behavior:
//  1. Validate the endpoints (ErrInvalidInvocation).
//  2. PrepareSearch: reset every cell's search state and marks, recompute neighbors.
//  3. Relax outward from start until end is popped or the frontier empties,
//     calling the hook after each finalized cell.
//  4. Clear the Open/Closed marks of visited cells and call the hook once more.
//  5. Reconstruct the path and mark its interior cells MarkPath.
//
// An unreachable end is not an error: the result holds Path = [start],
// Found = false and TotalCost = +Inf.
//
// Complexity:
//
//   - Time:  O(N log N), N = Size², since each cell has at most four
//     incoming relaxations and therefore at most four frontier entries.
//   - Space: O(N).
func Run(g *grid.Grid, start, end *grid.Cell, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Hook == nil {
		cfg.Hook = observe.Nop
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	if err := validate(g, start, end); err != nil {
		return Result{}, err
	}

	began := time.Now()
	g.PrepareSearch()

	r := &runner{
		g:       g,
		start:   start,
		end:     end,
		options: cfg,
		pq:      frontier.New[*grid.Cell](g.Len()),
	}
	if cfg.SkipStale {
		r.finalized = make([]bool, g.Len())
	}

	cfg.Logger.Debug("search started",
		"algorithm", cfg.Algorithm.String(),
		"start", start.Coord().String(),
		"end", end.Coord().String(),
		"size", g.Size(),
	)

	r.init()
	r.process()
	r.clearMarks()

	path := ReconstructPath(g, end, start)
	found := end.HasParent()
	if found {
		for _, c := range path[1 : len(path)-1] {
			c.Mark = grid.MarkPath
		}
	}

	res := Result{
		Algorithm: cfg.Algorithm,
		Path:      path,
		Found:     found,
		Steps:     len(path),
		Visited:   len(r.visited),
		TotalCost: end.Distance,
		Elapsed:   time.Since(began),
	}
	cfg.Logger.Debug("search finished",
		"algorithm", cfg.Algorithm.String(),
		"found", res.Found,
		"steps", res.Steps,
		"visited", res.Visited,
		"cost", res.TotalCost,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

// validate rejects invocations the engine must not start.
func validate(g *grid.Grid, start, end *grid.Cell) error {
	switch {
	case g == nil:
		return fmt.Errorf("%w: grid is nil", ErrInvalidInvocation)
	case start == nil:
		return fmt.Errorf("%w: start is nil", ErrInvalidInvocation)
	case end == nil:
		return fmt.Errorf("%w: end is nil", ErrInvalidInvocation)
	case start == end:
		return fmt.Errorf("%w: start and end are the same cell %s", ErrInvalidInvocation, start.Coord())
	case !g.Owns(start):
		return fmt.Errorf("%w: start %s does not belong to the grid", ErrInvalidInvocation, start.Coord())
	case !g.Owns(end):
		return fmt.Errorf("%w: end %s does not belong to the grid", ErrInvalidInvocation, end.Coord())
	case start.Role == grid.Barrier:
		return fmt.Errorf("%w: start %s is a barrier", ErrInvalidInvocation, start.Coord())
	case end.Role == grid.Barrier:
		return fmt.Errorf("%w: end %s is a barrier", ErrInvalidInvocation, end.Coord())
	}

	return nil
}

// runner holds the transient state of one run.
type runner struct {
	g          *grid.Grid
	start, end *grid.Cell
	options    Options

	pq        *frontier.Queue[*grid.Cell] // keyed by Estimate; stale entries tolerated
	finalized []bool                      // only allocated with SkipStale
	visited   []*grid.Cell                // visited-order log, duplicates included
}

// init seeds the start cell and the frontier.
func (r *runner) init() {
	r.start.Distance = 0
	if r.options.Algorithm == AStar {
		r.start.Estimate = Manhattan(r.start, r.end)
	} else {
		r.start.Estimate = 0
	}
	r.pq.Push(0, r.start)
}

// process is the main loop. It stops when end is popped or the frontier
// empties.
//
// Stale entries are reprocessed unless SkipStale is set: relaxing from an
// already-final cell cannot improve any neighbor, so the repeat only shows
// up as an extra hook call and an extra visited-log entry.
func (r *runner) process() {
	for !r.pq.IsEmpty() {
		current, _ := r.pq.PopMin()
		if current == r.end {
			return
		}
		if r.finalized != nil {
			if r.finalized[current.Index] {
				continue
			}
			r.finalized[current.Index] = true
		}

		r.relax(current)

		r.visited = append(r.visited, current)
		r.options.Hook(observe.Snapshot{Grid: r.g, Current: current, Step: len(r.visited)})
		if current != r.start {
			current.Mark = grid.MarkClosed
		}
	}
}

// relax tries to improve every neighbor of current through current.
func (r *runner) relax(current *grid.Cell) {
	for _, n := range r.g.Neighbors(current) {
		tentative := current.Distance + float64(n.Weight)
		// Strict comparison: equal distances never requeue.
		if tentative >= n.Distance {
			continue
		}
		n.Distance = tentative
		if r.options.Algorithm == AStar {
			n.Estimate = tentative + Manhattan(n, r.end)
		} else {
			n.Estimate = tentative
		}
		n.Parent = current.Index
		r.pq.Push(n.Estimate, n)
		if n != r.end {
			n.Mark = grid.MarkOpen
		}
	}
}

// clearMarks reverts visited cells to MarkNone and reports the cleared
// board. Distances and parents are left for path extraction.
func (r *runner) clearMarks() {
	for _, c := range r.visited {
		if c != r.start && c != r.end {
			c.Mark = grid.MarkNone
		}
	}
	r.options.Hook(observe.Snapshot{Grid: r.g, Step: len(r.visited), Final: true})
}
