// Package longhike finds the longest scenic hike across a trail map.
//
// A map is a rectangular grid of forest '#', path '.' and slope tiles
// ('^', 'v', '<', '>'). The hike starts on the single path tile of the first
// row, ends anywhere on the last row, and never steps on the same tile twice.
//
// What is in the box?
//
//	gridgraph/ — tile model, map loader, entrance lookup, slope entry table
//	dfs/       — exhaustive backtracking search for the longest simple path
//	cmd/       — the longhike command-line tool
//
// Two computations are exposed at the top level:
//
//	LongestPathWithSlopes(path)    — slopes force their direction
//	LongestPathWithoutSlopes(path) — slopes behave like plain paths
//
// Both are thin wrappers over Solve, which accepts a context for
// cancellation and logging (see internal/ctxlog).
//
// Quick ASCII example:
//
//	#.###
//	#.>.#
//	###v#
//	###.#
//
// has a single 5-step hike: down, right onto '>', right, down onto 'v', down.
package longhike
