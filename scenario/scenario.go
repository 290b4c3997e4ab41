// Package scenario loads grid scenarios from HCL files.
//
// A scenario describes the board (size, weight domain, seed, optional
// explicit layout and random barrier scatter), the two endpoints, an explicit
// barrier list and the algorithm to run:
//
//	algorithm = "astar"
//	barriers  = [[1, 1], [1, 2]]
//
//	grid {
//	  size    = 20
//	  seed    = 42
//	  weights = [1, 2, 3]
//	  scatter = 0.3
//	}
//
//	start { row = 0  col = 0 }
//	end   { row = 19 col = 19 }
//
// Build turns a Scenario into a grid with Start and End painted, ready for
// search.Run.
package scenario

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

var (
	// ErrMissingEndpoint indicates the scenario lacks a start or end block.
	ErrMissingEndpoint = errors.New("scenario: missing endpoint")

	// ErrBadCoord indicates an endpoint or barrier is malformed, out of
	// bounds, or collides with another endpoint.
	ErrBadCoord = errors.New("scenario: bad coordinate")

	// ErrBadValue indicates an attribute holds a value outside its domain.
	ErrBadValue = errors.New("scenario: bad value")
)

// AlgorithmBoth asks the front end to run every algorithm on the same board.
const AlgorithmBoth = "both"

// Scenario is a decoded scenario file. The zero value describes a
// DefaultSize time-seeded board with no endpoints.
type Scenario struct {
	// Algorithm is "dijkstra", "astar", AlgorithmBoth or empty.
	Algorithm string
	Size      int
	Seed      *int64
	Weights   []int
	Scatter   float64
	// Layout, when set, fixes every weight and the size.
	Layout   [][]int
	Barriers []grid.Coord
	Start    *grid.Coord
	End      *grid.Coord
}

// Algorithms resolves Algorithm into the runs to perform, in order.
// An empty Algorithm yields def.
func (s *Scenario) Algorithms(def search.Algorithm) ([]search.Algorithm, error) {
	return ParseAlgorithms(s.Algorithm, def)
}

// ParseAlgorithms accepts a single algorithm name or AlgorithmBoth.
func ParseAlgorithms(name string, def search.Algorithm) ([]search.Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return []search.Algorithm{def}, nil
	case AlgorithmBoth:
		return []search.Algorithm{search.Dijkstra, search.AStar}, nil
	}
	a, err := search.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}

	return []search.Algorithm{a}, nil
}

// Validate checks the scenario's values without building anything.
func (s *Scenario) Validate() error {
	if _, err := s.Algorithms(search.Dijkstra); err != nil {
		return err
	}
	if s.Size < 0 {
		return fmt.Errorf("%w: size %d", ErrBadValue, s.Size)
	}
	if s.Scatter < 0 || s.Scatter > 1 {
		return fmt.Errorf("%w: scatter %g outside [0,1]", ErrBadValue, s.Scatter)
	}
	for _, w := range s.Weights {
		if w <= 0 {
			return fmt.Errorf("%w: weight %d", ErrBadValue, w)
		}
	}

	return nil
}

// Build creates the grid, paints the endpoints, scatters random barriers
// (sparing the endpoints) and then paints the explicit barriers.
//
// With a Seed the result is reproducible: weights and scatter draw from the
// same seeded source.
func (s *Scenario) Build() (*grid.Grid, *grid.Cell, *grid.Cell, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, nil, err
	}
	switch {
	case s.Start == nil:
		return nil, nil, nil, fmt.Errorf("%w: start", ErrMissingEndpoint)
	case s.End == nil:
		return nil, nil, nil, fmt.Errorf("%w: end", ErrMissingEndpoint)
	case *s.Start == *s.End:
		return nil, nil, nil, fmt.Errorf("%w: start and end are both %s", ErrBadCoord, s.Start)
	}

	var rng *rand.Rand
	if s.Seed != nil {
		rng = rand.New(rand.NewSource(*s.Seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g, err := s.newGrid(rng)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := g.SetRole(*s.Start, grid.Start); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: start: %w", ErrBadCoord, err)
	}
	if err := g.SetRole(*s.End, grid.End); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: end: %w", ErrBadCoord, err)
	}

	if s.Scatter > 0 {
		g.Scatter(rng, s.Scatter)
	}

	for i, b := range s.Barriers {
		if b == *s.Start || b == *s.End {
			return nil, nil, nil, fmt.Errorf("%w: barrier %d at %s covers an endpoint", ErrBadCoord, i, b)
		}
		if err := g.SetRole(b, grid.Barrier); err != nil {
			return nil, nil, nil, fmt.Errorf("%w: barrier %d: %w", ErrBadCoord, i, err)
		}
	}

	start, _ := g.At(*s.Start)
	end, _ := g.At(*s.End)

	return g, start, end, nil
}

func (s *Scenario) newGrid(rng *rand.Rand) (*grid.Grid, error) {
	if len(s.Layout) > 0 {
		g, err := grid.FromWeights(s.Layout)
		if err != nil {
			return nil, fmt.Errorf("scenario: layout: %w", err)
		}

		return g, nil
	}

	size := s.Size
	if size == 0 {
		size = grid.DefaultSize
	}
	opts := []grid.Option{grid.WithRand(rng)}
	if len(s.Weights) > 0 {
		opts = append(opts, grid.WithWeights(s.Weights...))
	}

	return grid.New(size, opts...)
}
