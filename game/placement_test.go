package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestPlaceShip(t *testing.T) {
	t.Run("accepts a legal placement", func(t *testing.T) {
		b := NewBoard(DefaultConfig())

		id, err := b.PlaceShip(5, Coordinate{Row: 0, Col: 0}, Horizontal)

		require.NoError(t, err)
		require.Equal(t, 0, id, "First ship should get arena index 0")
		for col := 0; col < 5; col++ {
			shipID, ok := b.ShipAt(Coordinate{Row: 0, Col: col})
			require.True(t, ok, "Ship should occupy (0,%d)", col)
			require.Equal(t, id, shipID)
		}
	})

	t.Run("rejects lengths outside the manifest", func(t *testing.T) {
		b := NewBoard(DefaultConfig())

		_, err := b.PlaceShip(0, Coordinate{}, Horizontal)
		require.ErrorIs(t, err, ErrInvalidShipSpec, "Zero length is malformed")

		_, err = b.PlaceShip(-2, Coordinate{}, Horizontal)
		require.ErrorIs(t, err, ErrInvalidShipSpec, "Negative length is malformed")

		_, err = b.PlaceShip(6, Coordinate{}, Horizontal)
		require.ErrorIs(t, err, ErrInvalidShipSpec, "No 6-ship in the default manifest")
	})

	t.Run("rejects ships crossing the edge", func(t *testing.T) {
		b := NewBoard(DefaultConfig())

		_, err := b.PlaceShip(3, Coordinate{Row: 0, Col: 8}, Horizontal)
		require.ErrorIs(t, err, ErrOutOfBounds)

		_, err = b.PlaceShip(3, Coordinate{Row: 8, Col: 0}, Vertical)
		require.ErrorIs(t, err, ErrOutOfBounds)

		_, err = b.PlaceShip(3, Coordinate{Row: -1, Col: 0}, Vertical)
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("rejects overlapping ships", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		_, err := b.PlaceShip(5, Coordinate{Row: 0, Col: 0}, Horizontal)
		require.NoError(t, err)

		_, err = b.PlaceShip(4, Coordinate{Row: 0, Col: 2}, Horizontal)
		require.ErrorIs(t, err, ErrOverlap, "Crossing an occupied cell must be rejected")

		_, err = b.PlaceShip(4, Coordinate{Row: 0, Col: 3}, Vertical)
		require.ErrorIs(t, err, ErrOverlap, "A single shared cell is still an overlap")
	})

	t.Run("out of bounds wins over overlap", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		_, err := b.PlaceShip(5, Coordinate{Row: 0, Col: 5}, Horizontal)
		require.NoError(t, err)

		// Crosses both the edge and the existing ship.
		_, err = b.PlaceShip(4, Coordinate{Row: 0, Col: 8}, Horizontal)
		require.ErrorIs(t, err, ErrOutOfBounds, "Checks run in order, first failure wins")
	})

	t.Run("adjacency exclusion", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AdjacencyExclusion = true
		b := NewBoard(cfg)
		_, err := b.PlaceShip(5, Coordinate{Row: 0, Col: 0}, Horizontal)
		require.NoError(t, err)

		_, err = b.PlaceShip(4, Coordinate{Row: 1, Col: 0}, Horizontal)
		require.ErrorIs(t, err, ErrTooClose, "Orthogonally touching ship must be rejected")

		_, err = b.PlaceShip(4, Coordinate{Row: 1, Col: 5}, Horizontal)
		require.ErrorIs(t, err, ErrTooClose, "Diagonally touching ship must be rejected")

		_, err = b.PlaceShip(4, Coordinate{Row: 2, Col: 0}, Horizontal)
		require.NoError(t, err, "One row of water in between is enough")
	})

	t.Run("touching ships allowed by default", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		_, err := b.PlaceShip(5, Coordinate{Row: 0, Col: 0}, Horizontal)
		require.NoError(t, err)

		_, err = b.PlaceShip(4, Coordinate{Row: 1, Col: 0}, Horizontal)
		require.NoError(t, err)
	})

	t.Run("rejects manifest count overflow", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		_, err := b.PlaceShip(3, Coordinate{Row: 0, Col: 0}, Horizontal)
		require.NoError(t, err)
		_, err = b.PlaceShip(3, Coordinate{Row: 2, Col: 0}, Horizontal)
		require.NoError(t, err, "The default manifest has two 3-ships")

		_, err = b.PlaceShip(3, Coordinate{Row: 4, Col: 0}, Horizontal)
		require.ErrorIs(t, err, ErrDuplicateSize, "A third 3-ship exceeds the manifest")
	})

	t.Run("rejected placement leaves the board unchanged", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		_, err := b.PlaceShip(5, Coordinate{Row: 0, Col: 0}, Horizontal)
		require.NoError(t, err)

		_, err = b.PlaceShip(4, Coordinate{Row: 0, Col: 4}, Horizontal)
		require.ErrorIs(t, err, ErrOverlap)

		require.Equal(t, []int{5}, b.fleet.Sizes(), "Rejected ship must not be committed")
		_, ok := b.ShipAt(Coordinate{Row: 0, Col: 5})
		require.False(t, ok, "Rejected ship must not mark cells")
	})
}

func TestFleetCompletion(t *testing.T) {
	t.Run("complete iff size multiset equals the manifest", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		require.False(t, b.Complete(), "Empty fleet is incomplete")

		placements := []struct {
			length int
			origin Coordinate
		}{
			{5, Coordinate{Row: 0, Col: 0}},
			{4, Coordinate{Row: 2, Col: 0}},
			{3, Coordinate{Row: 4, Col: 0}},
			{3, Coordinate{Row: 6, Col: 0}},
		}
		for _, p := range placements {
			_, err := b.PlaceShip(p.length, p.origin, Horizontal)
			require.NoError(t, err)
		}
		require.False(t, b.Complete(), "Missing the 2-ship")

		_, err := b.PlaceShip(2, Coordinate{Row: 8, Col: 0}, Horizontal)
		require.NoError(t, err)
		require.True(t, b.Complete())
	})
}

func TestRandomFleet(t *testing.T) {
	countOccupied := func(b *Board) int {
		n := 0
		for row := 0; row < b.cfg.Size; row++ {
			for col := 0; col < b.cfg.Size; col++ {
				if _, ok := b.ShipAt(Coordinate{Row: row, Col: col}); ok {
					n++
				}
			}
		}
		return n
	}

	t.Run("always yields a complete legal fleet", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 50; i++ {
			b := NewBoard(DefaultConfig())
			require.NoError(t, RandomFleet(b, rng))
			require.True(t, b.Complete())
			require.Equal(t, 17, countOccupied(b),
				"Occupied cells must equal the manifest total, so no overlap")
		}
	})

	t.Run("respects adjacency exclusion", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AdjacencyExclusion = true
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 20; i++ {
			b := NewBoard(cfg)
			require.NoError(t, RandomFleet(b, rng))
			require.True(t, b.Complete())
		}
	})

	t.Run("clears a partially placed board first", func(t *testing.T) {
		b := NewBoard(DefaultConfig())
		_, err := b.PlaceShip(5, Coordinate{Row: 0, Col: 0}, Horizontal)
		require.NoError(t, err)

		require.NoError(t, RandomFleet(b, rand.New(rand.NewSource(3))))
		require.Equal(t, 17, countOccupied(b))
	})
}
