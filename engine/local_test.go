package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gambit/agent"
	"gambit/game"
)

type scriptedAgent struct {
	move game.Move
}

func (a scriptedAgent) ChooseMove(state game.State) (game.Move, error) {
	return a.move, nil
}

func minimaxPair() []agent.Agent {
	return []agent.Agent{agent.NewMinimaxAgent(), agent.NewMinimaxAgent()}
}

func TestRunGrundyMatch(t *testing.T) {
	t.Run("heap of 5 is won by the first player under optimal play", func(t *testing.T) {
		e := NewLocalEngine(game.NewGrundyState(5), minimaxPair())

		summary, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 0, summary.Winner)
		require.Equal(t, []float64{1, -1}, summary.Utilities)
		require.Greater(t, summary.Moves, 0)
	})

	t.Run("heap of 4 is won by the second player under optimal play", func(t *testing.T) {
		e := NewLocalEngine(game.NewGrundyState(4), minimaxPair())

		summary, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 1, summary.Winner)
		require.Equal(t, []float64{-1, 1}, summary.Utilities)
	})

	t.Run("terminal utilities are zero-sum", func(t *testing.T) {
		e := NewLocalEngine(game.NewGrundyState(8), minimaxPair())

		summary, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 0.0, summary.Utilities[0]+summary.Utilities[1])
	})
}

func TestRunTicTacToeDraw(t *testing.T) {
	e := NewLocalEngine(game.NewTicTacToeState(), minimaxPair())

	summary, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, -1, summary.Winner, "perfect play draws")
	require.Equal(t, []float64{0, 0}, summary.Utilities)
	require.Equal(t, 9, summary.Moves)
}

func TestRunRejectsIllegalMove(t *testing.T) {
	cheat := scriptedAgent{move: game.SplitMove{Heap: 9, Take: 1}}
	e := NewLocalEngine(game.NewGrundyState(5), []agent.Agent{cheat, agent.NewMinimaxAgent()})

	_, err := e.Run()

	require.ErrorContains(t, err, "illegal move")
}

func TestNewLocalEngineContract(t *testing.T) {
	t.Run("requires at least two players", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocalEngine(game.NewGrundyState(5), []agent.Agent{agent.NewMinimaxAgent()})
		})
	})

	t.Run("requires one agent per player", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocalEngine(game.NewGrundyState(5), []agent.Agent{
				agent.NewMinimaxAgent(), agent.NewMinimaxAgent(), agent.NewMinimaxAgent(),
			})
		})
	})
}

func TestWinnerOf(t *testing.T) {
	require.Equal(t, 0, winnerOf([]float64{1, -1}))
	require.Equal(t, 1, winnerOf([]float64{-1, 1}))
	require.Equal(t, -1, winnerOf([]float64{0, 0}), "a tied top payoff is a draw")
}
