package gridgraph

import "errors"

var (
	// ErrMalformedInput indicates the grid source could not be read or is structurally invalid.
	ErrMalformedInput = errors.New("gridgraph: malformed input")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownTile indicates a symbol outside the tile alphabet.
	ErrUnknownTile = errors.New("gridgraph: unknown tile symbol")
	// ErrNoStartFound indicates row 0 contains no path tile.
	ErrNoStartFound = errors.New("gridgraph: first row does not contain a path tile")
)
