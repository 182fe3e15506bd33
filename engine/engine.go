package engine

// MaxMoves caps any match, guarding against State implementations that never
// reach a terminal state.
const MaxMoves = 10000

// Summary describes a finished match.
type Summary struct {
	Winner    int // index of the player with the strictly highest payoff, -1 on a draw
	Moves     int
	Utilities []float64
}

type Engine interface {
	// Run plays the game out and reports how it ended
	Run() (Summary, error)
}
