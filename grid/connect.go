package grid

// Connected reports whether b can be reached from a by orthogonal moves
// over non-barrier cells. It reads roles directly, so it does not depend on
// cached neighbors being fresh. A barrier endpoint is never connected.
//
// Time:   O(Size²).
// Memory: O(Size²) for visited flags and the queue.
func (g *Grid) Connected(a, b Coord) (bool, error) {
	src, err := g.At(a)
	if err != nil {
		return false, err
	}
	dst, err := g.At(b)
	if err != nil {
		return false, err
	}
	if src.Role == Barrier || dst.Role == Barrier {
		return false, nil
	}

	seen := make([]bool, len(g.cells))
	queue := []int{src.Index}
	seen[src.Index] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst.Index {
			return true, nil
		}
		ur, uc := g.Coordinate(u)
		for _, d := range offsets {
			v := Coord{Row: ur + d[0], Col: uc + d[1]}
			if !g.InBounds(v) {
				continue
			}
			vi := g.index(v.Row, v.Col)
			if seen[vi] || g.cells[vi].Role == Barrier {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	return false, nil
}

// Regions partitions the non-barrier cells into orthogonally connected
// regions. Each region lists flat indices in BFS order from its lowest
// index; regions are ordered by that lowest index.
//
// Time:   O(Size²).
// Memory: O(Size²).
func (g *Grid) Regions() [][]int {
	seen := make([]bool, len(g.cells))
	var regions [][]int

	for i := range g.cells {
		if seen[i] || g.cells[i].Role == Barrier {
			continue
		}
		queue := []int{i}
		seen[i] = true
		for qi := 0; qi < len(queue); qi++ {
			ur, uc := g.Coordinate(queue[qi])
			for _, d := range offsets {
				v := Coord{Row: ur + d[0], Col: uc + d[1]}
				if !g.InBounds(v) {
					continue
				}
				vi := g.index(v.Row, v.Col)
				if seen[vi] || g.cells[vi].Role == Barrier {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}
