package ai

import "battleship/game"

// Memory is the per-instance shot history a strategy accumulates over one
// game: every coordinate it has fired at, the unresolved hits on the ship it
// is currently working on, and the queue of candidate targets derived from
// them. It is discarded with the game.
type Memory struct {
	fired map[game.Coordinate]bool
	hits  []game.Coordinate // hits on the current target ship, oldest first
	queue []game.Coordinate // candidate targets, popped front-first
}

// NewMemory returns an empty memory.
func NewMemory() *Memory {
	return &Memory{fired: make(map[game.Coordinate]bool)}
}

// Fired reports whether c has already been fired at.
func (m *Memory) Fired(c game.Coordinate) bool {
	return m.fired[c]
}

// MarkFired records c as fired.
func (m *Memory) MarkFired(c game.Coordinate) {
	m.fired[c] = true
}

// ShotsFired returns how many distinct coordinates have been fired at.
func (m *Memory) ShotsFired() int {
	return len(m.fired)
}

// Targeting reports whether there is an unresolved hit being chased.
func (m *Memory) Targeting() bool {
	return len(m.hits) > 0
}

// popCandidate removes and returns the first untried candidate. Candidates
// that were fired at since they were queued are skipped.
func (m *Memory) popCandidate() (game.Coordinate, bool) {
	for len(m.queue) > 0 {
		c := m.queue[0]
		m.queue = m.queue[1:]
		if !m.fired[c] {
			return c, true
		}
	}
	return game.Coordinate{}, false
}

// resolve clears the hit chain and candidate queue, returning to hunt mode.
func (m *Memory) resolve() {
	m.hits = m.hits[:0]
	m.queue = m.queue[:0]
}
