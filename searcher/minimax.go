package searcher

import (
	"fmt"
	"math"

	"gambit/game"
)

// Prediction is the outcome of evaluating one state: the utility vector under
// optimal play by everyone, the move that achieves it for the active player,
// and the state that move produces.
type Prediction struct {
	Utilities []float64
	Move      game.Move
	Result    game.State
}

type Option func(m *Minimax)

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

// Minimax enumerates the full game tree below a state, with no pruning, depth
// cutoff, or transposition detection: cost is O(b^d) in the branching factor
// and remaining depth, and memory is the recursion stack.
type Minimax struct {
	metrics MetricsCollector
	last    SearchMetrics
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{metrics: NewNoMetricsCollector()}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindBestPlay computes optimal play off a non-terminal state. Every level of
// the recursion maximizes the active player's own utility coordinate, which
// is exactly minimax in a zero-sum game; in a general-sum game each player is
// locally greedy and no equilibrium is guaranteed. Ties go to the move
// appearing first in LegalMoves order, so repeated calls return identical
// predictions.
//
// Calling this on a terminal state, or on a state that claims to be
// non-terminal while offering no moves, is a contract violation and panics.
func (m *Minimax) FindBestPlay(state game.State) Prediction {
	if state.IsTerminal() {
		panic("searcher: FindBestPlay called on a terminal state")
	}
	m.metrics.Start()
	prediction := m.bestPlay(state, 0)
	m.last = m.metrics.Complete()
	return prediction
}

// LastMetrics reports on the most recent FindBestPlay. Zero value unless the
// searcher was built WithMetrics.
func (m *Minimax) LastMetrics() SearchMetrics {
	return m.last
}

func (m *Minimax) bestPlay(state game.State, depth int) Prediction {
	m.metrics.AddNode(depth)

	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic(fmt.Sprintf("searcher: non-terminal state offers no moves: %v", state))
	}

	mover := state.Player()
	// Any real utility vector beats the initial one.
	best := Prediction{Utilities: lowestUtilities(len(state.Utilities()))}

	for _, move := range moves {
		child, err := state.Play(move)
		if err != nil {
			panic(fmt.Sprintf("searcher: state rejected its own legal move %v: %v", move, err))
		}

		var utilities []float64
		if child.IsTerminal() {
			m.metrics.AddLeaf()
			utilities = child.Utilities()
		} else {
			utilities = m.bestPlay(child, depth+1).Utilities
		}

		// Strictly greater keeps the earliest of tied moves.
		if utilities[mover] > best.Utilities[mover] {
			best = Prediction{Utilities: utilities, Move: move, Result: child}
		}
	}
	return best
}

func lowestUtilities(players int) []float64 {
	utilities := make([]float64, players)
	for i := range utilities {
		utilities[i] = math.Inf(-1)
	}
	return utilities
}
