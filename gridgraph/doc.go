// Package gridgraph treats a 2D hiking map of tiles as an implicit graph:
// every non-forest tile is a vertex and orthogonally adjacent tiles are
// joined by unit-length edges.
//
// What:
//
//   - Tile is a closed set of map symbols: forest '#', path '.', and the
//     four slopes '^', 'v', '<', '>'.
//   - Grid wraps an immutable, rectangular Rows×Cols tile array.
//   - Load/LoadFile parse the plain-text map format (one row per line).
//   - Start locates the entrance: the first path tile of row 0.
//   - CanEnter is the (tile, direction) lookup table that encodes slope rules.
//   - ReachesLastRow is a linear flood fill used as a fail-fast check
//     before exhaustive path searches.
//
// Why:
//
//   - Longest/shortest route puzzles on character maps.
//   - Feeding grid-shaped inputs into traversal algorithms (see package dfs)
//     without materializing an explicit vertex/edge structure.
//
// Complexity:
//
//   - Load:           O(R×C), Memory: O(R×C).
//   - Start:          O(C).
//   - ReachesLastRow: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrMalformedInput: the source is unreadable or structurally invalid.
//     It always wraps one of the more specific causes below when one applies.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTile: a character outside the tile alphabet.
//   - ErrNoStartFound: row 0 holds no path tile.
package gridgraph
