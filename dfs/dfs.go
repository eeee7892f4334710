// Package dfs implements the longest simple path search on gridgraph.Grid.
// It explores every simple path with chronological backtracking, honoring
// the movement policy, cancellation, path tracing and goal hooks.
//
// Key features:
//   - LongestPath(g, start, opts...): maximum step count to the last row
//   - Visited bookkeeping: one bitset shared by all frames, set before
//     recursing and cleared on return, so sibling branches never see
//     each other's cells
//   - Slope rules via gridgraph.Tile.Forced and gridgraph.CanEnter
//   - Fail-fast via gridgraph.Grid.ReachesLastRow before the search starts
//
// Complexity:
//
//   - Time:   exponential in open cells; every simple path is enumerated.
//   - Memory: O(R×C) for the bitset, recursion stack and traced path.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/longhike/gridgraph"
)

// walker encapsulates state during the search.
type walker struct {
	grid    *gridgraph.Grid      // underlying grid
	opts    Options              // search options
	res     *Result              // result collector
	visited []bool               // cells on the current branch, row-major
	stack   []gridgraph.Position // current branch, start first (Trace only)
	goal    int                  // last row index
}

// LongestPath returns the length, in steps, of the longest simple path from
// start to any cell of g's last row.
//
// A start on the last row yields Length 0. If no path exists the error is
// ErrNoPathFound. On cancellation or hook failure the partially filled
// Result is returned together with the error.
func LongestPath(g *gridgraph.Grid, start gridgraph.Position, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfBounds, start, g.Rows, g.Cols)
	}
	if g.At(start) == gridgraph.Forest {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}

	// 2. Apply options
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}

	// 3. Cheap reachability check before the exponential search
	if !g.ReachesLastRow(start) {
		return nil, fmt.Errorf("%w: last row unreachable from %v", ErrNoPathFound, start)
	}

	// 4. Search
	w := &walker{
		grid:    g,
		opts:    sopts,
		res:     &Result{},
		visited: make([]bool, g.Len()),
		goal:    g.LastRow(),
	}
	if sopts.Trace {
		w.stack = make([]gridgraph.Position, 0, g.Len())
	}
	length, ok, err := w.longest(start, 0)
	if err != nil {
		return w.res, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: from %v under %s policy", ErrNoPathFound, start, sopts.Policy)
	}
	w.res.Length = length

	return w.res, nil
}

// longest returns the maximum number of further steps from p to the last
// row along cells not yet visited on this branch. ok is false when no
// continuation reaches the last row. depth is the step count from start.
func (w *walker) longest(p gridgraph.Position, depth int) (best int, ok bool, err error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return 0, false, fmt.Errorf("dfs: search aborted at %v: %w", p, w.opts.Ctx.Err())
	default:
	}
	w.res.Explored++

	// 2. Goal row: the path is complete
	if p.Row == w.goal {
		return 0, true, w.reachGoal(p, depth)
	}

	// 3. Mark p as part of the current branch
	idx := w.grid.Index(p)
	w.visited[idx] = true
	if w.opts.Trace {
		w.stack = append(w.stack, p)
	}

	// 4. Explore candidate directions
	here := w.grid.At(p)
	for _, d := range w.candidates(here) {
		next := p.Step(d)
		if !w.canStep(next, d) {
			continue
		}
		sub, found, err := w.longest(next, depth+1)
		if err != nil {
			return 0, false, err
		}
		if found && (!ok || sub+1 > best) {
			best, ok = sub+1, true
		}
	}

	// 5. Backtrack
	w.visited[idx] = false
	if w.opts.Trace {
		w.stack = w.stack[:len(w.stack)-1]
	}

	return best, ok, nil
}

// candidates lists the directions worth trying from a tile.
func (w *walker) candidates(t gridgraph.Tile) []gridgraph.Direction {
	if w.opts.Policy == SlopesEnabled {
		if d, forced := t.Forced(); forced {
			return forcedMoves[d][:]
		}
	}
	return gridgraph.Directions[:]
}

// forcedMoves holds one single-element slice per direction, so a forced
// move costs no allocation.
var forcedMoves = [4][1]gridgraph.Direction{
	gridgraph.Up:    {gridgraph.Up},
	gridgraph.Down:  {gridgraph.Down},
	gridgraph.Left:  {gridgraph.Left},
	gridgraph.Right: {gridgraph.Right},
}

// canStep reports whether next may be entered by a move in direction d.
func (w *walker) canStep(next gridgraph.Position, d gridgraph.Direction) bool {
	if !w.grid.InBounds(next) || w.visited[w.grid.Index(next)] {
		return false
	}
	t := w.grid.At(next)
	if t == gridgraph.Forest {
		return false
	}
	if w.opts.Policy == SlopesEnabled {
		return gridgraph.CanEnter(t, d)
	}
	return true
}

// reachGoal records an arrival at the last row after depth steps.
func (w *walker) reachGoal(p gridgraph.Position, depth int) error {
	w.res.GoalsReached++
	if w.opts.Trace && (w.res.Path == nil || depth > len(w.res.Path)-1) {
		path := make([]gridgraph.Position, len(w.stack), len(w.stack)+1)
		copy(path, w.stack)
		w.res.Path = append(path, p)
	}
	if w.opts.OnGoal != nil {
		if err := w.opts.OnGoal(depth); err != nil {
			return fmt.Errorf("dfs: OnGoal hook at %v: %w", p, err)
		}
	}
	return nil
}
