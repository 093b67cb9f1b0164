package game

// CellState is what an attacker knows about a cell of the defending board.
type CellState uint8

const (
	CellUnknown CellState = iota
	CellMiss
	CellHit
)

// Board owns one player's fleet plus the attack state of every cell. It is
// mutated only through PlaceShip during setup and the session's attack
// resolution; presentation code gets read access only.
type Board struct {
	cfg      GameConfig
	fleet    Fleet
	cells    []CellState // row-major, Size*Size
	occupant []int       // ship ID per cell, -1 when water
}

// NewBoard returns an empty board for the given configuration.
func NewBoard(cfg GameConfig) *Board {
	n := cfg.Size * cfg.Size
	b := &Board{
		cfg:      cfg,
		cells:    make([]CellState, n),
		occupant: make([]int, n),
	}
	for i := range b.occupant {
		b.occupant[i] = -1
	}
	return b
}

// Config returns the configuration the board was built with.
func (b *Board) Config() GameConfig {
	return b.cfg
}

func (b *Board) index(c Coordinate) int {
	return c.Row*b.cfg.Size + c.Col
}

// State returns the attack state of a cell. Out-of-bounds coordinates read
// as CellUnknown.
func (b *Board) State(c Coordinate) CellState {
	if !b.cfg.InBounds(c) {
		return CellUnknown
	}
	return b.cells[b.index(c)]
}

// ShipAt returns the ID of the ship occupying c, if any.
func (b *Board) ShipAt(c Coordinate) (int, bool) {
	if !b.cfg.InBounds(c) {
		return 0, false
	}
	id := b.occupant[b.index(c)]
	return id, id >= 0
}

// Ship returns the placed ship with the given ID.
func (b *Board) Ship(id int) *Ship {
	return b.fleet.Ship(id)
}

// Complete reports whether the board's fleet matches the manifest exactly.
func (b *Board) Complete() bool {
	return b.fleet.matchesManifest(b.cfg)
}

// AllSunk reports whether every ship on the board is sunk.
func (b *Board) AllSunk() bool {
	return b.fleet.AllSunk()
}

// PlaceShip validates the candidate ship against the fleet placed so far and
// commits it on success, returning its stable ID. On failure the board is
// unchanged and the error is one of the placement sentinels.
func (b *Board) PlaceShip(length int, origin Coordinate, orientation Orientation) (int, error) {
	if err := b.validatePlacement(length, origin, orientation); err != nil {
		return 0, err
	}
	ship := b.fleet.add(length, origin, orientation)
	for _, c := range ship.Cells() {
		b.occupant[b.index(c)] = ship.ID
	}
	return ship.ID, nil
}

// applyAttack resolves a shot at c, which must be in bounds and untried.
// It returns whether the shot hit, and the ID of the ship it sank (-1 when
// nothing sank). Only the session calls this.
func (b *Board) applyAttack(c Coordinate) (hit bool, sunk int) {
	idx := b.index(c)
	id := b.occupant[idx]
	if id < 0 {
		b.cells[idx] = CellMiss
		return false, -1
	}
	b.cells[idx] = CellHit
	ship := b.fleet.Ship(id)
	ship.markHit(ship.segmentAt(c))
	if ship.Sunk() {
		return true, id
	}
	return true, -1
}

// clear removes all ships and attack marks, returning the board to its
// initial state. Used by the random fleet generator to restart a layout.
func (b *Board) clear() {
	b.fleet = Fleet{}
	for i := range b.cells {
		b.cells[i] = CellUnknown
		b.occupant[i] = -1
	}
}
