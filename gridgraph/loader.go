package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a text grid from r: one row per line, one tile per character.
// Windows line endings and a single trailing empty line are accepted.
//
// Every failure wraps ErrMalformedInput; where a specific cause applies
// (ErrEmptyGrid, ErrNonRectangular, ErrUnknownTile) it is wrapped too,
// so both errors.Is checks succeed.
// Complexity: O(R×C).
func Load(r io.Reader) (*Grid, error) {
	var (
		tiles [][]Tile
		sc    = bufio.NewScanner(r)
	)
	// Rows of very wide maps can exceed the default 64KiB token size.
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	pendingBlank := false
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			pendingBlank = true
			continue
		}
		if pendingBlank {
			return nil, fmt.Errorf("%w: %w: blank line before line %d", ErrMalformedInput, ErrNonRectangular, line)
		}
		row := make([]Tile, 0, len(text))
		for col, ch := range []rune(text) {
			t, err := ParseTile(ch)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d col %d: %w", ErrMalformedInput, line, col+1, err)
			}
			row = append(row, t)
		}
		if len(tiles) > 0 && len(row) != len(tiles[0]) {
			return nil, fmt.Errorf("%w: %w: line %d has %d tiles, want %d",
				ErrMalformedInput, ErrNonRectangular, line, len(row), len(tiles[0]))
		}
		tiles = append(tiles, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrMalformedInput, err)
	}

	g, err := NewGrid(tiles)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return g, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	defer f.Close()

	return Load(f)
}
