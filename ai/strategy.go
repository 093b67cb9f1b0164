// Package ai implements opponent targeting policies. Strategies see only
// their own shot history, never the defender's hidden fleet.
package ai

import (
	"errors"

	"golang.org/x/exp/rand"

	"battleship/game"
)

// ErrNoCandidates means every cell has been fired at. The engine never asks
// for a target after the game is over, so seeing this mid-game indicates a
// broken driver.
var ErrNoCandidates = errors.New("no untried coordinates remain")

// Strategy chooses attack coordinates for one side of one game. ChooseTarget
// never returns a coordinate the strategy has already fired at; the caller
// must feed every resolved attack back through Observe.
type Strategy interface {
	ChooseTarget() (game.Coordinate, error)
	Observe(game.AttackResult)
}

// HuntTarget is the classic two-mode policy. In hunt mode it samples
// uniformly from the untried cells of one checkerboard parity, which halves
// the search space without letting any ship of length >= 2 escape. A hit
// switches it to target mode: the hit's orthogonal neighbors are queued, and
// once a second hit fixes the ship's line the queue collapses to the two
// cells extending it. A sunk ship resolves the chase and returns to hunting.
type HuntTarget struct {
	cfg game.GameConfig
	mem *Memory
	rng *rand.Rand
}

// NewHuntTarget builds a strategy with its own generator. Each instance gets
// its own seed so concurrent games stay independent and tests can fix one.
func NewHuntTarget(cfg game.GameConfig, seed uint64) *HuntTarget {
	return &HuntTarget{
		cfg: cfg,
		mem: NewMemory(),
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Memory exposes the strategy's shot history.
func (h *HuntTarget) Memory() *Memory {
	return h.mem
}

// ChooseTarget returns the next coordinate to fire at.
func (h *HuntTarget) ChooseTarget() (game.Coordinate, error) {
	if c, ok := h.mem.popCandidate(); ok {
		return c, nil
	}
	return h.hunt()
}

// hunt picks uniformly among untried parity cells, falling back to the
// remaining off-parity cells once the parity set is exhausted.
func (h *HuntTarget) hunt() (game.Coordinate, error) {
	var parity, rest []game.Coordinate
	for row := 0; row < h.cfg.Size; row++ {
		for col := 0; col < h.cfg.Size; col++ {
			c := game.Coordinate{Row: row, Col: col}
			if h.mem.Fired(c) {
				continue
			}
			if (row+col)%2 == 0 {
				parity = append(parity, c)
			} else {
				rest = append(rest, c)
			}
		}
	}
	pool := parity
	if len(pool) == 0 {
		pool = rest
	}
	if len(pool) == 0 {
		return game.Coordinate{}, ErrNoCandidates
	}
	return pool[h.rng.Intn(len(pool))], nil
}

// Observe updates the memory with a resolved attack.
func (h *HuntTarget) Observe(result game.AttackResult) {
	h.mem.MarkFired(result.Coordinate)
	if !result.Hit {
		return
	}
	if result.SunkShip >= 0 {
		h.mem.resolve()
		return
	}
	h.mem.hits = append(h.mem.hits, result.Coordinate)
	h.reseed()
}

// reseed rebuilds the candidate queue from the current hit chain.
func (h *HuntTarget) reseed() {
	hits := h.mem.hits
	if len(hits) >= 2 {
		if line, ok := h.lineExtensions(hits); ok {
			h.mem.queue = line
			return
		}
		// Hits are not collinear: they straddle more than one ship. Chase
		// the most recent hit as a fresh lead.
		hits = hits[len(hits)-1:]
	}
	h.mem.queue = h.untriedNeighbors(hits[0])
}

func (h *HuntTarget) untriedNeighbors(c game.Coordinate) []game.Coordinate {
	var out []game.Coordinate
	for _, n := range c.Neighbors() {
		if h.cfg.InBounds(n) && !h.mem.Fired(n) {
			out = append(out, n)
		}
	}
	return out
}

// lineExtensions returns the two untried cells extending the hit chain in
// both directions, when the chain lies on a single row or column.
func (h *HuntTarget) lineExtensions(hits []game.Coordinate) ([]game.Coordinate, bool) {
	sameRow, sameCol := true, true
	lo, hi := hits[0], hits[0]
	for _, c := range hits[1:] {
		if c.Row != hits[0].Row {
			sameRow = false
		}
		if c.Col != hits[0].Col {
			sameCol = false
		}
		if c.Less(lo) {
			lo = c
		}
		if hi.Less(c) {
			hi = c
		}
	}
	var ends []game.Coordinate
	switch {
	case sameRow:
		ends = []game.Coordinate{
			{Row: lo.Row, Col: lo.Col - 1},
			{Row: hi.Row, Col: hi.Col + 1},
		}
	case sameCol:
		ends = []game.Coordinate{
			{Row: lo.Row - 1, Col: lo.Col},
			{Row: hi.Row + 1, Col: hi.Col},
		}
	default:
		return nil, false
	}
	var out []game.Coordinate
	for _, c := range ends {
		if h.cfg.InBounds(c) && !h.mem.Fired(c) {
			out = append(out, c)
		}
	}
	return out, true
}

// Random fires uniformly at any untried cell. This is the original CPU
// opponent, kept as a baseline.
type Random struct {
	cfg game.GameConfig
	mem *Memory
	rng *rand.Rand
}

// NewRandom builds a uniform-random strategy with its own generator.
func NewRandom(cfg game.GameConfig, seed uint64) *Random {
	return &Random{
		cfg: cfg,
		mem: NewMemory(),
		rng: rand.New(rand.NewSource(seed)),
	}
}

// ChooseTarget returns an untried coordinate chosen uniformly.
func (r *Random) ChooseTarget() (game.Coordinate, error) {
	var pool []game.Coordinate
	for row := 0; row < r.cfg.Size; row++ {
		for col := 0; col < r.cfg.Size; col++ {
			c := game.Coordinate{Row: row, Col: col}
			if !r.mem.Fired(c) {
				pool = append(pool, c)
			}
		}
	}
	if len(pool) == 0 {
		return game.Coordinate{}, ErrNoCandidates
	}
	return pool[r.rng.Intn(len(pool))], nil
}

// Observe records the attack in the fired set.
func (r *Random) Observe(result game.AttackResult) {
	r.mem.MarkFired(result.Coordinate)
}
