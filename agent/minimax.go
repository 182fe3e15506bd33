package agent

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"gambit/game"
	"gambit/searcher"
)

// MinimaxAgent plays the move an exhaustive search proves optimal. Practical
// only for games whose full tree fits the time budget; the search has no
// depth cutoff.
type MinimaxAgent struct {
	searcher *searcher.Minimax
}

func NewMinimaxAgent(options ...searcher.Option) *MinimaxAgent {
	return &MinimaxAgent{searcher: searcher.NewMinimax(options...)}
}

func (a *MinimaxAgent) ChooseMove(state game.State) (game.Move, error) {
	if state.IsTerminal() {
		return nil, fmt.Errorf("no move to choose: game is over")
	}

	prediction := a.searcher.FindBestPlay(state)
	log.Debug().
		Floats64("utilities", prediction.Utilities).
		Stringer("move", prediction.Move).
		Msg("minimax worst-case prediction")
	return prediction.Move, nil
}

// LastMetrics reports on the agent's most recent search.
func (a *MinimaxAgent) LastMetrics() searcher.SearchMetrics {
	return a.searcher.LastMetrics()
}
