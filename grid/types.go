package grid

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrBadSize indicates a non-positive grid size.
	ErrBadSize = errors.New("grid: size must be positive")
	// ErrBadWeight indicates a non-positive cell weight or an empty weight domain.
	ErrBadWeight = errors.New("grid: weights must be positive integers")
	// ErrEmptyGrid indicates an explicit weight layout with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: layout must have at least one row and one column")
	// ErrNonSquare indicates an explicit weight layout that is not Size×Size.
	ErrNonSquare = errors.New("grid: layout must be square")
	// ErrOutOfBounds indicates a coordinate outside [0, Size).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadCoord indicates a coordinate string that is not "row,col".
	ErrBadCoord = errors.New("grid: coordinate must be formatted as row,col")
)

const (
	// DefaultSize is the side length used by the visualizer.
	DefaultSize = 20
	// DefaultScatter is the upper bound of the per-cell barrier chance used by Scatter.
	DefaultScatter = 0.5
	// NoParent marks a cell with no predecessor on the current best path.
	NoParent = -1
)

// DefaultWeights is the weight domain cells draw from when no other is given.
var DefaultWeights = []int{1, 2, 3}

// Role is the mutually exclusive part a cell plays on the board.
type Role int

const (
	// Empty cells are traversable at their weight.
	Empty Role = iota
	// Barrier cells are excluded from adjacency.
	Barrier
	// Start is the search source.
	Start
	// End is the search target.
	End
)

func (r Role) String() string {
	switch r {
	case Empty:
		return "empty"
	case Barrier:
		return "barrier"
	case Start:
		return "start"
	case End:
		return "end"
	}
	return "role(" + strconv.Itoa(int(r)) + ")"
}

// Mark is the transient observable state a search leaves on a cell.
// Renderers map marks to whatever presentation they like.
type Mark int

const (
	// MarkNone is the neutral state.
	MarkNone Mark = iota
	// MarkOpen flags a cell currently sitting in the frontier.
	MarkOpen
	// MarkClosed flags a finalized cell.
	MarkClosed
	// MarkPath flags a cell on the reconstructed route.
	MarkPath
)

func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkOpen:
		return "open"
	case MarkClosed:
		return "closed"
	case MarkPath:
		return "path"
	}
	return "mark(" + strconv.Itoa(int(m)) + ")"
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats c as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// ParseCoord parses "row,col". Whitespace around either number is ignored.
func ParseCoord(s string) (Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}

	return Coord{Row: row, Col: col}, nil
}

// Cell is a single square of the grid together with the search state
// written onto it by the most recent run.
type Cell struct {
	Row, Col int // Position within the grid
	Index    int // Row-major index: Row*Size + Col
	Weight   int // Cost of stepping onto this cell

	Role Role
	Mark Mark

	Distance float64 // Best-known distance from the start, +Inf when unreached
	Estimate float64 // Distance plus heuristic (A* only), +Inf when unreached
	Parent   int     // Index of the predecessor, or NoParent

	neighbors []int
}

// Coord returns the cell's position.
func (c *Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// HasParent reports whether the cell has a predecessor.
func (c *Cell) HasParent() bool {
	return c.Parent != NoParent
}

// Reached reports whether the last run assigned the cell a finite distance.
func (c *Cell) Reached() bool {
	return !math.IsInf(c.Distance, 1)
}

// Options configures grid construction.
//
// Rand    – randomness source for weights; nil means a time-seeded source.
// Weights – weight domain; each cell draws uniformly from it.
type Options struct {
	Rand    *rand.Rand
	Weights []int
}

// Option represents a functional option for New.
type Option func(*Options)

// WithRand sets the randomness source used to draw weights.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = rng
	}
}

// WithSeed draws weights from a source seeded with seed, making the grid reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithWeights replaces the weight domain. The slice is copied.
func WithWeights(weights ...int) Option {
	return func(o *Options) {
		o.Weights = append([]int(nil), weights...)
	}
}

// DefaultOptions returns the options New starts from: no explicit source and
// the {1,2,3} weight domain.
func DefaultOptions() Options {
	return Options{
		Weights: append([]int(nil), DefaultWeights...),
	}
}
