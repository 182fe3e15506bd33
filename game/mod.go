package game

import "errors"

// ErrInvalidMove is wrapped by every Play rejection: the move is not in the
// state's current legal set.
var ErrInvalidMove = errors.New("invalid move")

// Move fully describes one legal move off a specific state. Concrete move
// types are plain comparable values; moves from different states are never
// compared to each other.
type Move interface {
	String() string
}

// State should be immutable - operations on State always return a new copy
type State interface {
	// Player returns the 0-based index of the player who has the move.
	// Not meaningful on a terminal state.
	Player() int
	// LegalMoves returns every legal move off this state. The order is fixed
	// per implementation: searchers break ties by the first move encountered.
	LegalMoves() []Move
	// Play returns the successor reached by the given move, leaving the
	// receiver untouched. Moves outside LegalMoves fail with ErrInvalidMove.
	Play(Move) (State, error)
	// IsTerminal reports whether the game is over. Some games end with legal
	// moves still on the board, so callers must not infer terminality from an
	// empty LegalMoves.
	IsTerminal() bool
	// Utilities returns each player's payoff at a terminal state. Non-terminal
	// states return the all-zero vector of the game's player count; a drawn
	// terminal state is also all zeros, so gate on IsTerminal, not the values.
	Utilities() []float64
	// String renders the state for humans. Drivers only; searchers never call it.
	String() string
}
