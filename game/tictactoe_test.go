package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const e = emptyCell

func TestTicTacToeWinDetection(t *testing.T) {
	t.Run("full row wins even with empty cells left", func(t *testing.T) {
		state := NewTicTacToeState(WithBoard([][]int{
			{0, 0, 0},
			{1, 1, e},
			{e, e, e},
		}))

		require.True(t, state.IsTerminal())
		require.NotEmpty(t, state.LegalMoves(), "terminality is not inferred from an empty move list")
		require.Equal(t, []float64{1, -1}, state.Utilities())
	})

	t.Run("full column wins", func(t *testing.T) {
		state := NewTicTacToeState(WithBoard([][]int{
			{1, 0, e},
			{1, 0, e},
			{1, e, 0},
		}))

		require.True(t, state.IsTerminal())
		require.Equal(t, []float64{-1, 1}, state.Utilities())
	})

	t.Run("diagonal wins on a square board", func(t *testing.T) {
		state := NewTicTacToeState(WithBoard([][]int{
			{0, 1, e},
			{1, 0, e},
			{e, e, 0},
		}))

		require.True(t, state.IsTerminal())
		require.Equal(t, []float64{1, -1}, state.Utilities())
	})

	t.Run("full board with no line is a draw", func(t *testing.T) {
		state := NewTicTacToeState(WithBoard([][]int{
			{0, 1, 0},
			{0, 1, 1},
			{1, 0, 0},
		}))

		require.True(t, state.IsTerminal())
		require.Empty(t, state.LegalMoves())
		require.Equal(t, []float64{0, 0}, state.Utilities())
	})

	t.Run("game in progress is neither", func(t *testing.T) {
		state := NewTicTacToeState(WithBoard([][]int{
			{0, 1, e},
			{e, e, e},
			{e, e, e},
		}))

		require.False(t, state.IsTerminal())
		require.Equal(t, []float64{0, 0}, state.Utilities(), "non-terminal states report the zero vector")
	})
}

func TestTicTacToeLegalMoves(t *testing.T) {
	t.Run("empty default board offers every cell in row-major order", func(t *testing.T) {
		state := NewTicTacToeState()

		got := state.LegalMoves()

		require.Len(t, got, 9)
		require.Equal(t, Move(CellMove{Row: 0, Col: 0}), got[0])
		require.Equal(t, Move(CellMove{Row: 0, Col: 1}), got[1])
		require.Equal(t, Move(CellMove{Row: 2, Col: 2}), got[8])
	})

	t.Run("custom dimensions size the board", func(t *testing.T) {
		state := NewTicTacToeState(WithDimensions(4, 5))

		require.Len(t, state.LegalMoves(), 20)
	})
}

func TestTicTacToePlay(t *testing.T) {
	t.Run("claims the cell for the mover and hands over the turn", func(t *testing.T) {
		state := NewTicTacToeState()

		child, err := state.Play(CellMove{Row: 1, Col: 1})

		require.NoError(t, err)
		require.Equal(t, 1, child.Player())
		require.Len(t, child.LegalMoves(), 8)
	})

	t.Run("rejects a taken cell", func(t *testing.T) {
		state := NewTicTacToeState(WithBoard([][]int{
			{0, e, e},
			{e, e, e},
			{e, e, e},
		}))

		_, err := state.Play(CellMove{Row: 0, Col: 0})

		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("rejects an off-board cell", func(t *testing.T) {
		state := NewTicTacToeState()

		_, err := state.Play(CellMove{Row: 3, Col: 0})

		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		state := NewTicTacToeState()

		_, err := state.Play(CellMove{Row: 0, Col: 0})

		require.NoError(t, err)
		require.Len(t, state.LegalMoves(), 9)
		require.Equal(t, 0, state.Player())
	})

	t.Run("seed board is copied, not aliased", func(t *testing.T) {
		cells := [][]int{
			{e, e, e},
			{e, e, e},
			{e, e, e},
		}
		state := NewTicTacToeState(WithBoard(cells))

		cells[0][0] = 1

		require.Len(t, state.LegalMoves(), 9, "mutating the seed slice must not reach the state")
	})
}

func TestTicTacToeString(t *testing.T) {
	state := NewTicTacToeState(WithBoard([][]int{
		{0, 1, e},
		{e, 0, e},
		{e, e, 1},
	}))

	want := "  0 1 2\n0 X O .\n1 . X .\n2 . . O"
	require.Equal(t, want, state.String())
}
