package search

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/observe"
)

// Sentinel errors returned by the search engine.
var (
	// ErrInvalidInvocation indicates Run was asked to search with a nil grid,
	// a nil or foreign endpoint, a barrier endpoint, or start == end. Nothing
	// is mutated when it is returned.
	ErrInvalidInvocation = errors.New("search: invalid invocation")

	// ErrUnknownAlgorithm indicates ParseAlgorithm did not recognize its input.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects the priority key used by the frontier.
type Algorithm int

const (
	// Dijkstra orders the frontier by best-known distance.
	Dijkstra Algorithm = iota
	// AStar orders the frontier by distance plus the Manhattan heuristic.
	AStar
)

func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm accepts "dijkstra", "astar", "a-star" or "a*", in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}
	return Dijkstra, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Options configures a run.
//
// Algorithm – Dijkstra (default) or AStar.
// Hook      – observation hook; nil means observe.Nop.
// Logger    – receives run-level debug records; nil discards.
// SkipStale – skip popped cells that were already finalized; same paths and costs, fewer hook calls.
type Options struct {
	Algorithm Algorithm
	Hook      observe.Hook
	Logger    *slog.Logger
	SkipStale bool
}

// Option represents a functional option for Run.
type Option func(*Options)

// WithAlgorithm picks the search algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithHook installs the observation hook.
func WithHook(h observe.Hook) Option {
	return func(o *Options) {
		o.Hook = h
	}
}

// WithLogger routes run-level logging to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithStaleSkip enables skipping of stale frontier entries.
func WithStaleSkip() Option {
	return func(o *Options) {
		o.SkipStale = true
	}
}

// DefaultOptions returns a Dijkstra run with no hook and no logging.
func DefaultOptions() Options {
	return Options{
		Algorithm: Dijkstra,
		Hook:      observe.Nop,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// Result summarizes a completed run.
type Result struct {
	Algorithm Algorithm
	// Path runs from start to end inclusive when Found; otherwise it holds
	// only the start cell.
	Path  []*grid.Cell
	Found bool
	// Steps is len(Path).
	Steps int
	// Visited is the length of the visited-order log.
	Visited int
	// TotalCost is the end cell's distance, +Inf when it was not reached.
	TotalCost float64
	Elapsed   time.Duration
}

// ElapsedMs returns Elapsed in fractional milliseconds.
func (r Result) ElapsedMs() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Coords returns the positions along Path.
func (r Result) Coords() []grid.Coord {
	out := make([]grid.Coord, len(r.Path))
	for i, c := range r.Path {
		out[i] = c.Coord()
	}

	return out
}
