package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
)

// Config holds everything one invocation needs. Pointer and zero-valued
// override fields mean "keep what the scenario says".
type Config struct {
	ScenarioPath string

	Size      int
	Seed      *int64
	Scatter   *float64
	Algorithm string
	Start     *grid.Coord
	End       *grid.Coord

	Delay           time.Duration
	StreamURL       string
	StreamNamespace string

	LogFormat string
	LogLevel  string
	Quiet     bool
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Size < 0 {
		return nil, fmt.Errorf("size must be positive, got %d", cfg.Size)
	}
	if cfg.Scatter != nil && (*cfg.Scatter < 0 || *cfg.Scatter > 1) {
		return nil, fmt.Errorf("scatter must be within [0,1], got %g", *cfg.Scatter)
	}
	if _, err := scenario.ParseAlgorithms(cfg.Algorithm, search.Dijkstra); err != nil {
		return nil, err
	}
	if cfg.Delay < 0 {
		return nil, errors.New("delay must not be negative")
	}
	if cfg.StreamURL == "" && cfg.StreamNamespace != "" {
		return nil, errors.New("stream-namespace requires stream-url")
	}

	return &cfg, nil
}

// apply layers the overrides onto s.
func (c *Config) apply(s *scenario.Scenario) {
	if c.Size > 0 {
		s.Size = c.Size
		s.Layout = nil
	}
	if c.Seed != nil {
		seed := *c.Seed
		s.Seed = &seed
	}
	if c.Scatter != nil {
		s.Scatter = *c.Scatter
	}
	if c.Algorithm != "" {
		s.Algorithm = c.Algorithm
	}
	if c.Start != nil {
		start := *c.Start
		s.Start = &start
	}
	if c.End != nil {
		end := *c.End
		s.End = &end
	}
}
