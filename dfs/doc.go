// Package dfs implements exhaustive depth‑first search with backtracking
// over a gridgraph.Grid, finding the longest simple path from an entrance
// to the grid's last row.
//
// What:
//
//   - LongestPath: explores every simple path from a start cell and reports
//     the maximum number of steps (edges) among those that end on the last
//     row. Supports:
//   - Two movement policies: SlopesEnabled and SlopesIgnored
//   - Cancellation via context.Context
//   - Path tracing (one longest path, start first)
//   - A goal hook invoked on every arrival at the last row
//
// Why:
//   - Longest-route puzzles where every tile may be visited at most once
//   - Verifying hand-made maps: determinism, slope rules, dead ends
//
// Movement rules:
//
//   - Forest tiles are never entered; no cell is visited twice on one path.
//   - SlopesEnabled: standing on a slope leaves only its forced direction,
//     and a slope is never entered by a move straight against its forced
//     direction (see gridgraph.CanEnter).
//   - SlopesIgnored: all four neighbors are candidates from every tile.
//
// Conventions:
//
//   - Reaching the last row ends a path with 0 further steps, so a start on
//     the last row yields Length 0 and two adjacent rows yield Length 1.
//   - Failure to reach the last row at all is ErrNoPathFound, never 0.
//
// Complexity:
//
//   - LongestPath: Time exponential in the number of open cells (all simple
//     paths are enumerated), Memory O(R×C) for the visited bitset and the
//     recursion stack.
//
// Errors:
//
//   - ErrGridNil            grid pointer is nil
//   - ErrStartOutOfBounds   start lies outside the grid
//   - ErrStartBlocked       start is a forest tile
//   - ErrNoPathFound        no simple path reaches the last row
//   - context.Canceled / context.DeadlineExceeded (wrapped)
//   - hook errors (wrapped) from OnGoal
package dfs
