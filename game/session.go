package game

// Phase is the session's position in the game lifecycle.
type Phase int

const (
	Setup      Phase = iota // both boards accepting placements
	InProgress              // alternating turns
	Finished                // terminal, winner decided
)

func (p Phase) String() string {
	switch p {
	case Setup:
		return "setup"
	case InProgress:
		return "in progress"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// GameSession pairs two boards and is the single source of truth for turn
// order and outcome. It is owned by one control flow; attack resolution is
// atomic and non-reentrant.
type GameSession struct {
	cfg    GameConfig
	boards [2]*Board
	phase  Phase
	turn   PlayerID // 0 until the game starts
	winner PlayerID
	sink   EventSink
}

// NewSession creates a fresh session in the Setup phase. sink may be nil.
func NewSession(cfg GameConfig, sink EventSink) *GameSession {
	return &GameSession{
		cfg:    cfg,
		boards: [2]*Board{NewBoard(cfg), NewBoard(cfg)},
		sink:   sink,
	}
}

func (g *GameSession) emit(e Event) {
	if g.sink != nil {
		g.sink(e)
	}
}

// Config returns the rules the session was built with.
func (g *GameSession) Config() GameConfig {
	return g.cfg
}

// Board returns the given player's own board.
func (g *GameSession) Board(p PlayerID) *Board {
	return g.boards[p-1]
}

// Phase returns the current lifecycle phase.
func (g *GameSession) Phase() Phase {
	return g.phase
}

// Turn returns the current turn holder, or 0 before the game starts.
func (g *GameSession) Turn() PlayerID {
	return g.turn
}

// Winner returns the winning player once the session is Finished, 0 before.
func (g *GameSession) Winner() PlayerID {
	return g.winner
}

// Place validates and commits a ship on the player's own board. Allowed only
// during Setup. The accepted or rejected outcome is also emitted as an event.
func (g *GameSession) Place(p PlayerID, length int, origin Coordinate, orientation Orientation) (int, error) {
	if g.phase != Setup {
		return 0, ErrPlacementClosed
	}
	id, err := g.Board(p).PlaceShip(length, origin, orientation)
	if err != nil {
		g.emit(PlacementRejected{Player: p, Reason: err})
		return 0, err
	}
	g.emit(PlacementAccepted{Player: p, ShipID: id})
	return id, nil
}

// Start moves the session to InProgress. Both fleets must match the manifest
// exactly. Player 1 takes the first turn.
func (g *GameSession) Start() error {
	if g.phase != Setup {
		return ErrAlreadyStarted
	}
	for _, b := range g.boards {
		if !b.Complete() {
			return ErrManifestMismatch
		}
	}
	g.phase = InProgress
	g.turn = Player1
	g.emit(TurnChanged{Player: Player1})
	return nil
}

// Attack resolves p firing at target on the opposing board. Resolution is
// deterministic: the same placements and attack sequence always reproduce
// the same outcomes.
func (g *GameSession) Attack(p PlayerID, target Coordinate) (AttackResult, error) {
	if g.phase == Finished {
		return AttackResult{}, ErrGameOver
	}
	if p != g.turn {
		return AttackResult{}, ErrNotYourTurn
	}
	if !g.cfg.InBounds(target) {
		return AttackResult{}, ErrOutOfBounds
	}
	defender := g.Board(p.Opponent())
	if defender.State(target) != CellUnknown {
		return AttackResult{}, ErrAlreadyAttacked
	}

	hit, sunk := defender.applyAttack(target)
	result := AttackResult{
		Coordinate: target,
		Hit:        hit,
		SunkShip:   sunk,
	}

	if sunk >= 0 && defender.AllSunk() {
		result.Winner = p
		g.phase = Finished
		g.winner = p
		g.emit(AttackResolved{Attacker: p, Result: result})
		g.emit(GameOver{Winner: p})
		return result, nil
	}

	g.emit(AttackResolved{Attacker: p, Result: result})
	if hit && g.cfg.ExtraTurnOnHit {
		return result, nil
	}
	g.turn = p.Opponent()
	g.emit(TurnChanged{Player: g.turn})
	return result, nil
}
