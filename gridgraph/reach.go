package gridgraph

// ReachesLastRow reports whether any tile of the last row is connected to
// from through non-forest tiles, ignoring slope directions.
//
// Any path that is legal under slope rules is also legal here, so a false
// result proves that no search policy can reach the goal row. It returns
// false when from is out of bounds or on a forest tile.
//
// Time:   O(R·C), 4 neighbors per cell.
// Memory: O(R·C) for seen flags and the queue.
func (g *Grid) ReachesLastRow(from Position) bool {
	if !g.InBounds(from) || g.At(from) == Forest {
		return false
	}
	seen := make([]bool, g.Len())
	i0 := g.Index(from)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := g.Position(queue[qi])
		if u.Row == g.LastRow() {
			return true
		}
		for _, d := range Directions {
			v := u.Step(d)
			if !g.InBounds(v) || g.At(v) == Forest {
				continue
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return false
}
