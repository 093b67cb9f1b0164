package game

import "sort"

// Fleet is the arena holding one player's ships. Ship IDs are indices into
// the arena, assigned in placement order, and stay stable for the whole game.
type Fleet struct {
	ships []*Ship
}

func (f *Fleet) add(length int, origin Coordinate, orientation Orientation) *Ship {
	ship := newShip(len(f.ships), length, origin, orientation)
	f.ships = append(f.ships, ship)
	return ship
}

// Ship returns the ship with the given ID. Panics on an unknown ID: ship IDs
// only come from this fleet, so a bad one means a broken caller.
func (f *Fleet) Ship(id int) *Ship {
	return f.ships[id]
}

// Len returns the number of ships placed so far.
func (f *Fleet) Len() int {
	return len(f.ships)
}

// count returns how many ships of the given length the fleet holds.
func (f *Fleet) count(length int) int {
	n := 0
	for _, ship := range f.ships {
		if ship.Length == length {
			n++
		}
	}
	return n
}

// Sizes returns the fleet's ship lengths in ascending order.
func (f *Fleet) Sizes() []int {
	sizes := make([]int, len(f.ships))
	for i, ship := range f.ships {
		sizes[i] = ship.Length
	}
	sort.Ints(sizes)
	return sizes
}

// matchesManifest reports whether the fleet's size multiset equals the
// configured manifest exactly.
func (f *Fleet) matchesManifest(cfg GameConfig) bool {
	want := append([]int(nil), cfg.ShipSizes...)
	sort.Ints(want)
	got := f.Sizes()
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// AllSunk reports whether every ship in the fleet is sunk. An empty fleet is
// not considered sunk.
func (f *Fleet) AllSunk() bool {
	if len(f.ships) == 0 {
		return false
	}
	for _, ship := range f.ships {
		if !ship.Sunk() {
			return false
		}
	}
	return true
}
