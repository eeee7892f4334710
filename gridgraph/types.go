// Package gridgraph defines the tile, direction and position types
// shared by the grid loader and the path explorer.
package gridgraph

import "fmt"

// Tile is the symbol stored in one grid cell.
type Tile uint8

const (
	// Forest is impassable.
	Forest Tile = iota
	// Path is freely traversable.
	Path
	// SlopeUp forces a move Up when slopes are honored.
	SlopeUp
	// SlopeDown forces a move Down when slopes are honored.
	SlopeDown
	// SlopeLeft forces a move Left when slopes are honored.
	SlopeLeft
	// SlopeRight forces a move Right when slopes are honored.
	SlopeRight

	numTiles
)

// tileRunes maps each Tile to its text symbol.
var tileRunes = [numTiles]rune{
	Forest:     '#',
	Path:       '.',
	SlopeUp:    '^',
	SlopeDown:  'v',
	SlopeLeft:  '<',
	SlopeRight: '>',
}

// ParseTile converts a map symbol into a Tile.
// Returns ErrUnknownTile for any rune outside the alphabet.
func ParseTile(r rune) (Tile, error) {
	for t, sym := range tileRunes {
		if sym == r {
			return Tile(t), nil
		}
	}

	return Forest, fmt.Errorf("%w: %q", ErrUnknownTile, r)
}

// Rune returns the map symbol of t.
func (t Tile) Rune() rune {
	if t >= numTiles {
		return '?'
	}
	return tileRunes[t]
}

// String implements fmt.Stringer.
func (t Tile) String() string { return string(t.Rune()) }

// IsSlope reports whether t is one of the four slope tiles.
func (t Tile) IsSlope() bool {
	_, ok := t.Forced()
	return ok
}

// Forced returns the direction a slope tile forces.
// ok is false for Forest and Path.
func (t Tile) Forced() (d Direction, ok bool) {
	switch t {
	case SlopeUp:
		return Up, true
	case SlopeDown:
		return Down, true
	case SlopeLeft:
		return Left, true
	case SlopeRight:
		return Right, true
	}
	return 0, false
}

// Direction is one of the four compass moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every Direction in fixed exploration order.
var Directions = [4]Direction{Up, Down, Left, Right}

var directionDeltas = [4][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// Delta returns the (row, col) offset of a single step in direction d.
func (d Direction) Delta() (dr, dc int) {
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return d ^ 1 // Up<->Down, Left<->Right
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// enterTable[t][d] reports whether a move in direction d may land on tile t
// when slopes are honored. A slope rejects only the move that runs straight
// against its forced direction; Forest rejects every move.
var enterTable = func() (tbl [numTiles][4]bool) {
	for t := Tile(0); t < numTiles; t++ {
		for _, d := range Directions {
			if t == Forest {
				continue
			}
			forced, slope := t.Forced()
			tbl[t][d] = !slope || forced != d.Reverse()
		}
	}
	return tbl
}()

// CanEnter reports whether a step in direction d may end on tile t
// under slope rules. For example a Down slope cannot be entered moving Up.
func CanEnter(t Tile, d Direction) bool {
	if t >= numTiles || d > Right {
		return false
	}
	return enterTable[t][d]
}

// Position identifies a cell by zero-based row and column.
type Position struct {
	Row, Col int
}

// Step returns the position one move away in direction d.
// The result may lie outside the grid; check with Grid.InBounds.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
