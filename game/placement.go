package game

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// validatePlacement runs the placement checks in order against the fleet
// placed so far. The first failing check determines the error, so callers
// get a deterministic reason code. Pure: the board is not modified.
func (b *Board) validatePlacement(length int, origin Coordinate, orientation Orientation) error {
	if length <= 0 {
		return ErrInvalidShipSpec
	}
	manifest := b.cfg.manifest()
	if manifest[length] == 0 {
		return ErrInvalidShipSpec
	}

	candidate := newShip(-1, length, origin, orientation)
	cells := candidate.Cells()

	for _, c := range cells {
		if !b.cfg.InBounds(c) {
			return ErrOutOfBounds
		}
	}
	for _, c := range cells {
		if _, occupied := b.ShipAt(c); occupied {
			return ErrOverlap
		}
	}
	if b.cfg.AdjacencyExclusion {
		// Scan the one-cell ring around the hull, diagonals included.
		for _, c := range cells {
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					n := Coordinate{Row: c.Row + dr, Col: c.Col + dc}
					if _, occupied := b.ShipAt(n); occupied {
						return ErrTooClose
					}
				}
			}
		}
	}
	if b.fleet.count(length) >= manifest[length] {
		return ErrDuplicateSize
	}
	return nil
}

// shipAttempts bounds the rejection sampling for a single ship before the
// whole layout is restarted, and layoutAttempts bounds the restarts.
const (
	shipAttempts   = 500
	layoutAttempts = 100
)

// RandomFleet fills the board with the full manifest at random positions,
// longest ships first. Each ship is rejection-sampled; if one cannot be
// placed the whole layout is discarded and retried, so the result is always
// a legal, complete fleet.
func RandomFleet(b *Board, rng *rand.Rand) error {
	if b.fleet.Len() > 0 {
		b.clear()
	}
	sizes := append([]int(nil), b.cfg.ShipSizes...)
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	for attempt := 0; attempt < layoutAttempts; attempt++ {
		if placeAll(b, sizes, rng) {
			return nil
		}
		b.clear()
	}
	return fmt.Errorf("random fleet: no legal layout after %d attempts: %w",
		layoutAttempts, ErrManifestMismatch)
}

func placeAll(b *Board, sizes []int, rng *rand.Rand) bool {
	for _, length := range sizes {
		if !placeOne(b, length, rng) {
			return false
		}
	}
	return true
}

func placeOne(b *Board, length int, rng *rand.Rand) bool {
	for attempt := 0; attempt < shipAttempts; attempt++ {
		orientation := Horizontal
		if rng.Intn(2) == 0 {
			orientation = Vertical
		}
		origin := Coordinate{}
		if orientation == Horizontal {
			origin.Row = rng.Intn(b.cfg.Size)
			origin.Col = rng.Intn(b.cfg.Size - length + 1)
		} else {
			origin.Row = rng.Intn(b.cfg.Size - length + 1)
			origin.Col = rng.Intn(b.cfg.Size)
		}
		if _, err := b.PlaceShip(length, origin, orientation); err == nil {
			return true
		}
	}
	return false
}
