package player

import (
	"testing"

	"github.com/stretchr/testify/require"

	"battleship/ai"
	"battleship/game"
)

func TestAIAgent(t *testing.T) {
	t.Run("places a complete fleet and proposes fresh targets", func(t *testing.T) {
		cfg := game.DefaultConfig()
		agent := NewAIAgent(ai.NewHuntTarget(cfg, 5), 6)

		b := game.NewBoard(cfg)
		require.NoError(t, agent.PlaceFleet(b))
		require.True(t, b.Complete())

		seen := make(map[game.Coordinate]bool)
		for i := 0; i < 10; i++ {
			c, err := agent.ChooseAttack()
			require.NoError(t, err)
			require.False(t, seen[c])
			seen[c] = true
			agent.Observe(game.AttackResult{Coordinate: c, SunkShip: -1})
		}
	})
}

func TestScripted(t *testing.T) {
	t.Run("replays its placements and moves in order", func(t *testing.T) {
		cfg := game.DefaultConfig()
		cfg.ShipSizes = []int{2}
		s := &Scripted{
			Placements: []Placement{
				{Length: 2, Origin: game.Coordinate{Row: 1, Col: 1}, Orientation: game.Vertical},
			},
			Moves: []game.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		}

		b := game.NewBoard(cfg)
		require.NoError(t, s.PlaceFleet(b))
		require.True(t, b.Complete())

		c, err := s.ChooseAttack()
		require.NoError(t, err)
		require.Equal(t, game.Coordinate{Row: 0, Col: 0}, c)
		c, err = s.ChooseAttack()
		require.NoError(t, err)
		require.Equal(t, game.Coordinate{Row: 0, Col: 1}, c)

		_, err = s.ChooseAttack()
		require.ErrorIs(t, err, ai.ErrNoCandidates, "Script exhausted")
	})
}
