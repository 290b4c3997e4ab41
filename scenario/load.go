package scenario

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
)

// fileRoot mirrors the top level of a scenario file.
type fileRoot struct {
	Algorithm *string        `hcl:"algorithm,optional"`
	Barriers  hcl.Expression `hcl:"barriers,optional"`
	Grid      *gridBlock     `hcl:"grid,block"`
	Start     *pointBlock    `hcl:"start,block"`
	End       *pointBlock    `hcl:"end,block"`
}

type gridBlock struct {
	Size    *int           `hcl:"size,optional"`
	Seed    *int64         `hcl:"seed,optional"`
	Weights []int          `hcl:"weights,optional"`
	Scatter *float64       `hcl:"scatter,optional"`
	Layout  hcl.Expression `hcl:"layout,optional"`
}

type pointBlock struct {
	Row int `hcl:"row"`
	Col int `hcl:"col"`
}

// matrixType is the cty shape of barriers and layout: a list of number lists.
var matrixType = cty.List(cty.List(cty.Number))

// LoadFile reads and parses the scenario at path.
func LoadFile(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	s, err := Parse(src, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Scenario loaded.",
		"algorithm", s.Algorithm,
		"size", s.Size,
		"layout_rows", len(s.Layout),
		"barriers", len(s.Barriers),
		"scatter", s.Scatter,
	)

	return s, nil
}

// Parse decodes an HCL scenario held in src. filename only labels
// diagnostics.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", filename, diags)
	}

	s := &Scenario{}
	if root.Algorithm != nil {
		s.Algorithm = *root.Algorithm
	}
	if root.Start != nil {
		s.Start = &grid.Coord{Row: root.Start.Row, Col: root.Start.Col}
	}
	if root.End != nil {
		s.End = &grid.Coord{Row: root.End.Row, Col: root.End.Col}
	}

	barriers, err := decodeMatrix(root.Barriers, "barriers")
	if err != nil {
		return nil, err
	}
	for i, pair := range barriers {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: %s: barrier %d has %d elements, want [row, col]",
				ErrBadCoord, root.Barriers.Range(), i, len(pair))
		}
		s.Barriers = append(s.Barriers, grid.Coord{Row: pair[0], Col: pair[1]})
	}

	if g := root.Grid; g != nil {
		if g.Size != nil {
			s.Size = *g.Size
		}
		s.Seed = g.Seed
		s.Weights = g.Weights
		if g.Scatter != nil {
			s.Scatter = *g.Scatter
		}
		if s.Layout, err = decodeMatrix(g.Layout, "layout"); err != nil {
			return nil, err
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", filename, err)
	}

	return s, nil
}

// decodeMatrix evaluates a static list-of-lists expression. An absent
// attribute yields nil.
func decodeMatrix(expr hcl.Expression, name string) ([][]int, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate %s: %w", name, diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	// Literal [[..], [..]] arrives as a tuple of tuples.
	listVal, err := convert.Convert(val, matrixType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s must be a list of number lists: %w", ErrBadValue, expr.Range(), name, err)
	}
	var out [][]int
	if err := gocty.FromCtyValue(listVal, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %s: %w", ErrBadValue, expr.Range(), name, err)
	}

	return out, nil
}
