package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gambit/game"
)

// RandomAgent picks uniformly among the legal moves. Baseline opponent for
// experiments.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) ChooseMove(state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, fmt.Errorf("no legal moves to choose from")
	}
	return moves[a.rng.Intn(len(moves))], nil
}
