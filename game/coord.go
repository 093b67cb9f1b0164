package game

import "fmt"

// Coordinate addresses a single cell on a square board. Row 0 is the top
// edge, column 0 the left edge. Coordinates are plain values: compare with
// ==, order with Less.
type Coordinate struct {
	Row int
	Col int
}

// Less orders coordinates by (row, column).
func (c Coordinate) Less(other Coordinate) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Neighbors returns the four orthogonally adjacent coordinates. Callers are
// responsible for bounds filtering.
func (c Coordinate) Neighbors() [4]Coordinate {
	return [4]Coordinate{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}
}

// Orientation is the axis a ship extends along from its origin.
type Orientation int

const (
	Horizontal Orientation = iota // extends along increasing column
	Vertical                      // extends along increasing row
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}
