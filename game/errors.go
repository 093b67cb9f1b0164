package game

import "errors"

// Placement errors, reported in check order: the first failing check wins.
var (
	ErrInvalidShipSpec  = errors.New("ship length not in the manifest")
	ErrOutOfBounds      = errors.New("coordinate outside the board")
	ErrOverlap          = errors.New("ship overlaps another ship")
	ErrTooClose         = errors.New("ship is adjacent to another ship")
	ErrDuplicateSize    = errors.New("manifest count for this ship length exceeded")
	ErrManifestMismatch = errors.New("fleet does not match the manifest")
)

// Turn errors.
var (
	ErrNotYourTurn     = errors.New("not this player's turn")
	ErrAlreadyAttacked = errors.New("coordinate already attacked")
	ErrGameOver        = errors.New("game is already over")
)

// Session lifecycle errors.
var (
	ErrPlacementClosed = errors.New("placement phase is over")
	ErrAlreadyStarted  = errors.New("game already started")
)
