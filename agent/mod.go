package agent

import "gambit/game"

// Agent is a player of games: asked for the state it is to move on, it picks
// one of the state's legal moves.
type Agent interface {
	ChooseMove(state game.State) (game.Move, error)
}
