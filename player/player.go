// Package player defines the agent abstraction the engine drives: anything
// that can set up a fleet and pick attack coordinates for one side of a game.
package player

import (
	"golang.org/x/exp/rand"

	"battleship/ai"
	"battleship/game"
)

// Agent is one side of a game.
type Agent interface {
	// PlaceFleet commits a full manifest of ships to the agent's own board.
	PlaceFleet(b *game.Board) error
	// ChooseAttack picks the next coordinate to fire at.
	ChooseAttack() (game.Coordinate, error)
	// Observe feeds the agent the result of its own resolved attack.
	Observe(result game.AttackResult)
}

// AIAgent pairs a targeting strategy with random fleet placement.
type AIAgent struct {
	strategy ai.Strategy
	rng      *rand.Rand
}

// NewAIAgent builds an agent around the given strategy. The seed drives
// placement only; the strategy carries its own generator.
func NewAIAgent(strategy ai.Strategy, seed uint64) *AIAgent {
	return &AIAgent{
		strategy: strategy,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *AIAgent) PlaceFleet(b *game.Board) error {
	return game.RandomFleet(b, a.rng)
}

func (a *AIAgent) ChooseAttack() (game.Coordinate, error) {
	return a.strategy.ChooseTarget()
}

func (a *AIAgent) Observe(result game.AttackResult) {
	a.strategy.Observe(result)
}

// Placement is one scripted ship placement.
type Placement struct {
	Length      int
	Origin      game.Coordinate
	Orientation game.Orientation
}

// Scripted plays a fixed placement and attack sequence. Used by tests and
// as the hook for an interactive front-end that queues one move at a time.
type Scripted struct {
	Placements []Placement
	Moves      []game.Coordinate

	next int
}

func (s *Scripted) PlaceFleet(b *game.Board) error {
	for _, p := range s.Placements {
		if _, err := b.PlaceShip(p.Length, p.Origin, p.Orientation); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scripted) ChooseAttack() (game.Coordinate, error) {
	if s.next >= len(s.Moves) {
		return game.Coordinate{}, ai.ErrNoCandidates
	}
	c := s.Moves[s.next]
	s.next++
	return c, nil
}

func (s *Scripted) Observe(game.AttackResult) {}
