package scenario_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
)

func load(t *testing.T, name string) *scenario.Scenario {
	t.Helper()
	s, err := scenario.LoadFile(context.Background(), filepath.Join("testdata", name))
	require.NoError(t, err)

	return s
}

func TestLoadFile_Detour(t *testing.T) {
	s := load(t, "detour.hcl")

	seed := int64(7)
	want := &scenario.Scenario{
		Algorithm: "both",
		Size:      5,
		Seed:      &seed,
		Weights:   []int{1},
		Barriers: []grid.Coord{
			{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3},
		},
		Start: &grid.Coord{Row: 2, Col: 2},
		End:   &grid.Coord{Row: 0, Col: 4},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("scenario mismatch (-want +got):\n%s", diff)
	}

	algos, err := s.Algorithms(search.Dijkstra)
	require.NoError(t, err)
	assert.Equal(t, []search.Algorithm{search.Dijkstra, search.AStar}, algos)

	g, start, end, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, g.Size())
	assert.Equal(t, grid.Start, start.Role)
	assert.Equal(t, grid.End, end.Role)
	assert.Len(t, g.Find(grid.Barrier), 5)

	res, err := search.Run(g, start, end, search.WithAlgorithm(search.AStar))
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.TotalCost)
	assert.Equal(t, 16, res.Visited)
}

func TestLoadFile_Layout(t *testing.T) {
	s := load(t, "layout.hcl")
	assert.Equal(t, [][]int{{1, 3, 1}, {1, 5, 1}, {4, 2, 1}}, s.Layout)

	g, start, end, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, 5, g.MustAt(1, 1).Weight)

	algos, err := s.Algorithms(search.Dijkstra)
	require.NoError(t, err)
	require.Equal(t, []search.Algorithm{search.AStar}, algos)

	res, err := search.Run(g, start, end, search.WithAlgorithm(algos[0]))
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.TotalCost)
}

// TestLoadFile_RandomIsReproducible: the same seed yields the same weights
// and barriers, and scatter spares both endpoints.
func TestLoadFile_RandomIsReproducible(t *testing.T) {
	s := load(t, "random.hcl")
	assert.Equal(t, 0.3, s.Scatter)

	g1, s1, e1, err := s.Build()
	require.NoError(t, err)
	g2, _, _, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, grid.Start, s1.Role)
	assert.Equal(t, grid.End, e1.Role)
	assert.NotEmpty(t, g1.Find(grid.Barrier))
	for i := range g1.Cells() {
		a, b := g1.Cell(i), g2.Cell(i)
		assert.Equal(t, a.Weight, b.Weight, "cell %s", a.Coord())
		assert.Equal(t, a.Role, b.Role, "cell %s", a.Coord())
	}
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := scenario.LoadFile(context.Background(), filepath.Join("testdata", "bad_barrier.hcl"))
	assert.ErrorIs(t, err, scenario.ErrBadCoord)

	_, err = scenario.LoadFile(context.Background(), filepath.Join("testdata", "missing.hcl"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name, src string
		target    error
	}{
		{"Syntax", `grid {`, nil},
		{"UnknownAttribute", `colour = "red"`, nil},
		{"UnknownAlgorithm", `algorithm = "bfs"`, search.ErrUnknownAlgorithm},
		{"ScatterRange", "grid {\n scatter = 1.5\n}", scenario.ErrBadValue},
		{"NegativeWeight", "grid {\n weights = [1, -2]\n}", scenario.ErrBadValue},
		{"BarriersNotMatrix", `barriers = "nope"`, scenario.ErrBadValue},
		{"FractionalBarrier", `barriers = [[1.5, 2]]`, scenario.ErrBadValue},
		{"MissingRow", "start {\n col = 1\n}", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.src), tc.name+".hcl")
			require.Error(t, err)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	at := func(r, c int) *grid.Coord { return &grid.Coord{Row: r, Col: c} }

	cases := []struct {
		name   string
		s      scenario.Scenario
		target error
	}{
		{"NoStart", scenario.Scenario{Size: 3, End: at(0, 0)}, scenario.ErrMissingEndpoint},
		{"NoEnd", scenario.Scenario{Size: 3, Start: at(0, 0)}, scenario.ErrMissingEndpoint},
		{"SameEndpoints", scenario.Scenario{Size: 3, Start: at(1, 1), End: at(1, 1)}, scenario.ErrBadCoord},
		{"StartOutside", scenario.Scenario{Size: 3, Start: at(3, 0), End: at(0, 0)}, grid.ErrOutOfBounds},
		{"BarrierOnEnd", scenario.Scenario{
			Size: 3, Start: at(0, 0), End: at(2, 2), Barriers: []grid.Coord{{Row: 2, Col: 2}},
		}, scenario.ErrBadCoord},
		{"BarrierOutside", scenario.Scenario{
			Size: 3, Start: at(0, 0), End: at(2, 2), Barriers: []grid.Coord{{Row: -1, Col: 2}},
		}, grid.ErrOutOfBounds},
		{"RaggedLayout", scenario.Scenario{
			Layout: [][]int{{1, 1}, {1}}, Start: at(0, 0), End: at(1, 0),
		}, grid.ErrNonSquare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := tc.s.Build()
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestBuild_Defaults(t *testing.T) {
	s := scenario.Scenario{Start: &grid.Coord{Row: 0, Col: 0}, End: &grid.Coord{Row: 19, Col: 19}}
	g, _, _, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, grid.DefaultSize, g.Size())
	assert.Empty(t, g.Find(grid.Barrier))
	for _, c := range g.Cells() {
		assert.Contains(t, grid.DefaultWeights, c.Weight)
	}
}

func TestParseAlgorithms(t *testing.T) {
	got, err := scenario.ParseAlgorithms("", search.AStar)
	require.NoError(t, err)
	assert.Equal(t, []search.Algorithm{search.AStar}, got)

	got, err = scenario.ParseAlgorithms("BOTH", search.AStar)
	require.NoError(t, err)
	assert.Equal(t, []search.Algorithm{search.Dijkstra, search.AStar}, got)

	_, err = scenario.ParseAlgorithms("greedy", search.Dijkstra)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}
