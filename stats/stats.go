// Package stats tallies outcomes across a run of games. Tallies are
// in-memory only; there is no save format.
package stats

import (
	"fmt"

	"battleship/game"
)

// Tracker accumulates per-player wins and shot counts.
type Tracker struct {
	games int
	wins  map[game.PlayerID]int
	shots int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{wins: make(map[game.PlayerID]int)}
}

// Record adds one finished game.
func (t *Tracker) Record(winner game.PlayerID, shots int) {
	t.games++
	t.wins[winner]++
	t.shots += shots
}

// Games returns the number of games recorded.
func (t *Tracker) Games() int {
	return t.games
}

// Wins returns how many games the player has won.
func (t *Tracker) Wins(p game.PlayerID) int {
	return t.wins[p]
}

// Losses returns how many recorded games the player did not win.
func (t *Tracker) Losses(p game.PlayerID) int {
	return t.games - t.wins[p]
}

// AverageShots returns the mean shots per game, 0 before any games.
func (t *Tracker) AverageShots() float64 {
	if t.games == 0 {
		return 0
	}
	return float64(t.shots) / float64(t.games)
}

func (t *Tracker) String() string {
	return fmt.Sprintf("games=%d p1=%d p2=%d avg_shots=%.1f",
		t.games, t.Wins(game.Player1), t.Wins(game.Player2), t.AverageShots())
}
