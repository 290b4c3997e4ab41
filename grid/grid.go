// Package grid provides the square board the search engine runs on.
//
// Cells are stored in a flat row-major slice. Adjacency is orthogonal only and
// skips barriers; it is cached per cell and must be recomputed (PrepareSearch
// or ComputeNeighbors) whenever the barrier layout changes.
package grid

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// offsets lists the orthogonal moves in the order neighbors are discovered:
// up, down, left, right. The order feeds the frontier's tie-breaking, so it
// is part of the observable behavior.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a Size×Size board of cells. It exclusively owns its cells.
type Grid struct {
	size    int
	cells   []Cell
	weights []int // domain Scatter redraws weights from
}

// New builds a size×size grid whose weights are drawn uniformly from the
// configured domain. Every cell starts Empty with no search state.
// Returns ErrBadSize for size ≤ 0 and ErrBadWeight for an empty or
// non-positive weight domain.
func New(size int, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	if err := validateWeights(cfg.Weights); err != nil {
		return nil, err
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := alloc(size)
	g.weights = cfg.Weights
	for i := range g.cells {
		g.cells[i].Weight = cfg.Weights[rng.Intn(len(cfg.Weights))]
	}

	return g, nil
}

// FromWeights builds a grid from an explicit square weight layout,
// weights[row][col]. The input is copied.
func FromWeights(weights [][]int) (*Grid, error) {
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	size := len(weights)
	for r, row := range weights {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, r, len(row), size)
		}
		if err := validateWeights(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
	}

	g := alloc(size)
	g.weights = append([]int(nil), DefaultWeights...)
	for r, row := range weights {
		for c, w := range row {
			g.cells[g.index(r, c)].Weight = w
		}
	}

	return g, nil
}

func alloc(size int) *Grid {
	g := &Grid{size: size, cells: make([]Cell, size*size)}
	for i := range g.cells {
		c := &g.cells[i]
		c.Row, c.Col = g.Coordinate(i)
		c.Index = i
		c.neighbors = make([]int, 0, len(offsets))
		g.ResetSearchState(c)
	}

	return g
}

func validateWeights(weights []int) error {
	if len(weights) == 0 {
		return ErrBadWeight
	}
	for _, w := range weights {
		if w <= 0 {
			return fmt.Errorf("%w: got %d", ErrBadWeight, w)
		}
	}

	return nil
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Len returns the number of cells, Size².
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within [0, Size) on both axes.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// index maps (row, col) to the flat row-major index.
func (g *Grid) index(row, col int) int {
	return row*g.size + col
}

// Coordinate converts a flat index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.size, idx % g.size
}

// At returns the cell at c, or ErrOutOfBounds.
func (g *Grid) At(c Coord) (*Cell, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %s on %d×%d grid", ErrOutOfBounds, c, g.size, g.size)
	}

	return &g.cells[g.index(c.Row, c.Col)], nil
}

// MustAt is At for coordinates known to be valid; it panics otherwise.
func (g *Grid) MustAt(row, col int) *Cell {
	c, err := g.At(Coord{Row: row, Col: col})
	if err != nil {
		panic(err)
	}

	return c
}

// Cell returns the cell at a flat index, or nil when idx is out of range.
func (g *Grid) Cell(idx int) *Cell {
	if idx < 0 || idx >= len(g.cells) {
		return nil
	}

	return &g.cells[idx]
}

// Owns reports whether c is one of g's cells.
func (g *Grid) Owns(c *Cell) bool {
	return c != nil && c.Index >= 0 && c.Index < len(g.cells) && &g.cells[c.Index] == c
}

// Cells returns the cells in row-major order. The slice aliases the grid.
func (g *Grid) Cells() []Cell { return g.cells }

// SetRole changes the role of the cell at c. Keeping a single Start and a
// single End is up to the caller.
func (g *Grid) SetRole(c Coord, r Role) error {
	cell, err := g.At(c)
	if err != nil {
		return err
	}
	cell.Role = r

	return nil
}

// ComputeNeighbors recomputes and caches the in-bounds, non-barrier
// orthogonal neighbors of the cell at c.
func (g *Grid) ComputeNeighbors(c Coord) error {
	cell, err := g.At(c)
	if err != nil {
		return err
	}
	g.computeNeighbors(cell)

	return nil
}

func (g *Grid) computeNeighbors(cell *Cell) {
	cell.neighbors = cell.neighbors[:0]
	for _, d := range offsets {
		n := Coord{Row: cell.Row + d[0], Col: cell.Col + d[1]}
		if !g.InBounds(n) {
			continue
		}
		idx := g.index(n.Row, n.Col)
		if g.cells[idx].Role == Barrier {
			continue
		}
		cell.neighbors = append(cell.neighbors, idx)
	}
}

// Neighbors returns the cached neighbors of cell, as of the last
// ComputeNeighbors or PrepareSearch.
func (g *Grid) Neighbors(cell *Cell) []*Cell {
	out := make([]*Cell, len(cell.neighbors))
	for i, idx := range cell.neighbors {
		out[i] = &g.cells[idx]
	}

	return out
}

// ParentOf returns the predecessor of cell, or nil.
func (g *Grid) ParentOf(cell *Cell) *Cell {
	if !cell.HasParent() {
		return nil
	}

	return g.Cell(cell.Parent)
}

// ResetSearchState returns a cell's distance, estimate and parent to their
// initial values.
func (g *Grid) ResetSearchState(cell *Cell) {
	cell.Distance = math.Inf(1)
	cell.Estimate = math.Inf(1)
	cell.Parent = NoParent
}

// PrepareSearch readies every cell for a fresh run: search state and marks
// are reset and neighbors recomputed against the current barrier layout.
func (g *Grid) PrepareSearch() {
	for i := range g.cells {
		c := &g.cells[i]
		g.ResetSearchState(c)
		c.Mark = MarkNone
		g.computeNeighbors(c)
	}
}

// ResetAll clears every cell back to an Empty role with no marks and no
// search state. Weights are kept; the caller re-applies Start and End.
func (g *Grid) ResetAll() {
	for i := range g.cells {
		c := &g.cells[i]
		c.Role = Empty
		c.Mark = MarkNone
		g.ResetSearchState(c)
		c.neighbors = c.neighbors[:0]
	}
}

// Find returns every cell with role r in row-major order.
func (g *Grid) Find(r Role) []*Cell {
	var out []*Cell
	for i := range g.cells {
		if g.cells[i].Role == r {
			out = append(out, &g.cells[i])
		}
	}

	return out
}

// Endpoints returns the first Start and the first End cell, either of which
// may be nil.
func (g *Grid) Endpoints() (start, end *Cell) {
	for i := range g.cells {
		c := &g.cells[i]
		switch {
		case c.Role == Start && start == nil:
			start = c
		case c.Role == End && end == nil:
			end = c
		}
	}

	return start, end
}
