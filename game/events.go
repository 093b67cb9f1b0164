package game

// PlayerID identifies one side of a session.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// AttackResult is the outcome of a single resolved attack.
type AttackResult struct {
	Coordinate Coordinate
	Hit        bool
	SunkShip   int      // ID of the ship this attack sank, -1 otherwise
	Winner     PlayerID // non-zero when the attack ended the game
}

// Event is a discrete notification emitted by the session. Presentation
// collaborators consume these; the core does not care how they are rendered.
type Event interface {
	event()
}

// EventSink receives session events synchronously, in emission order. A nil
// sink drops them.
type EventSink func(Event)

// PlacementAccepted reports a committed ship.
type PlacementAccepted struct {
	Player PlayerID
	ShipID int
}

// PlacementRejected reports a refused placement and the sentinel explaining
// why.
type PlacementRejected struct {
	Player PlayerID
	Reason error
}

// AttackResolved reports a resolved attack.
type AttackResolved struct {
	Attacker PlayerID
	Result   AttackResult
}

// TurnChanged reports the new turn holder.
type TurnChanged struct {
	Player PlayerID
}

// GameOver reports the winner. Emitted exactly once, after the final
// AttackResolved.
type GameOver struct {
	Winner PlayerID
}

func (PlacementAccepted) event() {}
func (PlacementRejected) event() {}
func (AttackResolved) event()    {}
func (TurnChanged) event()       {}
func (GameOver) event()          {}
