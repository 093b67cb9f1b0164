package game

// Ship occupies a straight run of cells and tracks per-segment damage. Ships
// live in their fleet's arena and are addressed by their stable ID; they are
// never shared between boards.
type Ship struct {
	ID          int
	Length      int
	Origin      Coordinate
	Orientation Orientation

	hits []bool // one flag per segment, in Cells() order
}

func newShip(id, length int, origin Coordinate, orientation Orientation) *Ship {
	return &Ship{
		ID:          id,
		Length:      length,
		Origin:      origin,
		Orientation: orientation,
		hits:        make([]bool, length),
	}
}

// Cells returns the coordinates the ship occupies, origin first.
func (s *Ship) Cells() []Coordinate {
	cells := make([]Coordinate, s.Length)
	for i := range cells {
		cells[i] = s.Origin
		if s.Orientation == Horizontal {
			cells[i].Col += i
		} else {
			cells[i].Row += i
		}
	}
	return cells
}

// segmentAt returns the segment index covering c, or -1 if the ship does not
// occupy c.
func (s *Ship) segmentAt(c Coordinate) int {
	switch s.Orientation {
	case Horizontal:
		if c.Row == s.Origin.Row && c.Col >= s.Origin.Col && c.Col < s.Origin.Col+s.Length {
			return c.Col - s.Origin.Col
		}
	case Vertical:
		if c.Col == s.Origin.Col && c.Row >= s.Origin.Row && c.Row < s.Origin.Row+s.Length {
			return c.Row - s.Origin.Row
		}
	}
	return -1
}

func (s *Ship) markHit(segment int) {
	s.hits[segment] = true
}

// SegmentHit reports whether the given segment has been hit.
func (s *Ship) SegmentHit(segment int) bool {
	return s.hits[segment]
}

// Sunk reports whether every segment has been hit.
func (s *Ship) Sunk() bool {
	for _, hit := range s.hits {
		if !hit {
			return false
		}
	}
	return true
}
