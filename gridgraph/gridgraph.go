package gridgraph

import "strings"

// Grid is an immutable Rows×Cols array of tiles.
// Cells are stored row-major; use At, Index and Position for access.
type Grid struct {
	Rows, Cols int
	cells      []Tile
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if tiles has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGrid(tiles [][]Tile) (*Grid, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(tiles), len(tiles[0])
	for _, row := range tiles {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]Tile, 0, rows*cols)
	for _, row := range tiles {
		cells = append(cells, row...)
	}

	return &Grid{Rows: rows, Cols: cols, cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// At returns the tile at p. p must be in bounds.
func (g *Grid) At(p Position) Tile {
	return g.cells[g.Index(p)]
}

// Index maps p to a row-major index: Row*Cols + Col.
func (g *Grid) Index(p Position) int {
	return p.Row*g.Cols + p.Col
}

// Position converts a row-major index back to a Position.
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Len returns the number of cells, Rows×Cols.
func (g *Grid) Len() int { return len(g.cells) }

// LastRow returns the index of the goal row.
func (g *Grid) LastRow() int { return g.Rows - 1 }

// Start scans row 0 left to right and returns the first Path tile.
// Returns ErrNoStartFound if row 0 has none.
func (g *Grid) Start() (Position, error) {
	for c := 0; c < g.Cols; c++ {
		if g.cells[c] == Path {
			return Position{Row: 0, Col: c}, nil
		}
	}
	return Position{}, ErrNoStartFound
}

// String renders the grid in its text form, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for i, t := range g.cells {
		sb.WriteRune(t.Rune())
		if (i+1)%g.Cols == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
