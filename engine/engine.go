// Package engine runs complete games between two agents over a single
// session, one synchronous attack at a time.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"battleship/game"
	"battleship/player"
)

// MaxMoves caps a game as a guard against a non-terminating agent. A 10x10
// game resolves in at most 200 shots, so hitting the cap means a broken
// agent or session invariant.
const MaxMoves = 10000

// Engine drives one game: placement, start, then alternating attacks until
// the session finishes.
type Engine struct {
	session *game.GameSession
	agents  [2]player.Agent
	moves   int
}

// Local wires two agents to a fresh session under the given rules. Events
// are forwarded to sink, which may be nil.
func Local(cfg game.GameConfig, p1, p2 player.Agent, sink game.EventSink) *Engine {
	if p1 == nil || p2 == nil {
		panic("engine: both agents are required")
	}
	return &Engine{
		session: game.NewSession(cfg, sink),
		agents:  [2]player.Agent{p1, p2},
	}
}

// Session exposes the underlying session, read-only by convention.
func (e *Engine) Session() *game.GameSession {
	return e.session
}

// Moves returns the number of attacks resolved so far.
func (e *Engine) Moves() int {
	return e.moves
}

// Run plays the game to completion and returns the winner.
func (e *Engine) Run() (game.PlayerID, error) {
	if err := e.setup(); err != nil {
		return 0, err
	}

	log.Info().Msgf("player %d is starting", e.session.Turn())

	for e.session.Phase() != game.Finished {
		if e.moves >= MaxMoves {
			return 0, fmt.Errorf("engine: no winner after %d moves", MaxMoves)
		}
		attacker := e.session.Turn()
		agent := e.agents[attacker-1]

		target, err := agent.ChooseAttack()
		if err != nil {
			return 0, fmt.Errorf("engine: player %d has no move: %w", attacker, err)
		}
		result, err := e.session.Attack(attacker, target)
		if err != nil {
			return 0, fmt.Errorf("engine: player %d attacking %v: %w", attacker, target, err)
		}
		agent.Observe(result)
		e.moves++

		log.Debug().
			Int("player", int(attacker)).
			Str("target", target.String()).
			Bool("hit", result.Hit).
			Int("sunk", result.SunkShip).
			Msg("attack resolved")
	}

	winner := e.session.Winner()
	log.Info().Msgf("player %d wins after %d moves", winner, e.moves)
	return winner, nil
}

func (e *Engine) setup() error {
	for i, agent := range e.agents {
		p := game.PlayerID(i + 1)
		if err := agent.PlaceFleet(e.session.Board(p)); err != nil {
			return fmt.Errorf("engine: player %d placement: %w", p, err)
		}
	}
	return e.session.Start()
}
