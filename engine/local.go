package engine

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"gambit/agent"
	"gambit/game"
	"gambit/utils"
)

// LocalEngine drives a match between in-process agents: it owns the current
// state, asks the active player's agent for a move, validates it, and applies
// it until the game ends. States are never mutated, only replaced.
type LocalEngine struct {
	State  game.State
	Agents []agent.Agent
}

func NewLocalEngine(state game.State, agents []agent.Agent) *LocalEngine {
	if len(agents) < 2 {
		panic("need at least two players")
	}
	if len(agents) != len(state.Utilities()) {
		panic("number of agents does not match the game's player count")
	}
	return &LocalEngine{State: state, Agents: agents}
}

// Run alternates turns until the game is over, then scores it. A match that
// outlives MaxMoves aborts with an error.
func (e *LocalEngine) Run() (Summary, error) {
	moves := 0
	for !e.State.IsTerminal() {
		if moves >= MaxMoves {
			return Summary{}, fmt.Errorf("game did not end within %d moves", MaxMoves)
		}

		mover := e.State.Player()
		move, err := e.Agents[mover].ChooseMove(e.State)
		if err != nil {
			return Summary{}, fmt.Errorf("player %d failed to choose a move: %w", mover, err)
		}

		next, err := e.step(mover, move)
		if err != nil {
			return Summary{}, err
		}
		e.State = next
		moves++

		log.Info().
			Int("player", mover).
			Stringer("move", move).
			Int("move_number", moves).
			Msg("move played")
	}

	utilities := e.State.Utilities()
	summary := Summary{Winner: winnerOf(utilities), Moves: moves, Utilities: utilities}
	log.Info().
		Int("winner", summary.Winner).
		Int("moves", summary.Moves).
		Floats64("utilities", utilities).
		Msg("game over")
	return summary, nil
}

// step applies a move after checking it against the state's own legal set, so
// a buggy agent cannot corrupt the match.
func (e *LocalEngine) step(mover int, move game.Move) (game.State, error) {
	legal := e.State.LegalMoves()
	if utils.FindIndex(legal, move) == -1 {
		return nil, fmt.Errorf("illegal move %v by player %d", move, mover)
	}
	return e.State.Play(move)
}

// winnerOf picks the player with the strictly highest payoff; any tie at the
// top is a draw.
func winnerOf(utilities []float64) int {
	winner := -1
	best := math.Inf(-1)
	tied := false
	for i, u := range utilities {
		switch {
		case u > best:
			best = u
			winner = i
			tied = false
		case u == best:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return winner
}
