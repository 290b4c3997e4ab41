package app

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Glyphs used by renderGrid. Empty cells show their weight.
const (
	glyphStart   = 'S'
	glyphEnd     = 'E'
	glyphBarrier = '#'
	glyphPath    = '*'
	glyphOpen    = 'o'
	glyphClosed  = 'x'
	glyphHeavy   = '+'
)

// glyph picks the character for one cell. Roles win over marks.
func glyph(c *grid.Cell) byte {
	switch c.Role {
	case grid.Start:
		return glyphStart
	case grid.End:
		return glyphEnd
	case grid.Barrier:
		return glyphBarrier
	}
	switch c.Mark {
	case grid.MarkPath:
		return glyphPath
	case grid.MarkOpen:
		return glyphOpen
	case grid.MarkClosed:
		return glyphClosed
	}
	if c.Weight > 9 {
		return glyphHeavy
	}

	return strconv.Itoa(c.Weight)[0]
}

// renderGrid writes g as Size lines of space-separated glyphs.
func renderGrid(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	size := g.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteByte(glyph(g.MustAt(r, c)))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// formatCost prints whole costs without decimals and "inf" for unreachable.
func formatCost(cost float64) string {
	if math.IsInf(cost, 1) {
		return "inf"
	}

	return strconv.FormatFloat(cost, 'f', -1, 64)
}

// writeStats writes the summary line the visualizer used to show in its
// status bar.
func writeStats(w io.Writer, res search.Result) error {
	status := "found"
	if !res.Found {
		status = "no path"
	}
	_, err := fmt.Fprintf(w, "%-8s %-7s steps=%d time=%.3fms visited=%d cost=%s\n",
		res.Algorithm, status, res.Steps, res.ElapsedMs(), res.Visited, formatCost(res.TotalCost))

	return err
}
