package game

// GameConfig holds the rule knobs a session consumes at construction. The
// zero value is not usable; start from DefaultConfig.
type GameConfig struct {
	Size               int   // board is Size x Size
	ShipSizes          []int // manifest: the multiset of ship lengths a legal fleet contains
	AdjacencyExclusion bool  // ships may not touch, including diagonally
	ExtraTurnOnHit     bool  // a hit keeps the turn instead of passing it
}

// DefaultConfig returns the classic rules: 10x10 board, fleet {5,4,3,3,2},
// ships may touch, strict turn alternation.
func DefaultConfig() GameConfig {
	return GameConfig{
		Size:      10,
		ShipSizes: []int{5, 4, 3, 3, 2},
	}
}

// InBounds reports whether c lies on the board.
func (cfg GameConfig) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < cfg.Size && c.Col >= 0 && c.Col < cfg.Size
}

// manifest returns the ship-size manifest as length -> count.
func (cfg GameConfig) manifest() map[int]int {
	m := make(map[int]int, len(cfg.ShipSizes))
	for _, size := range cfg.ShipSizes {
		m[size]++
	}
	return m
}
