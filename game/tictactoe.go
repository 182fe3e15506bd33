package game

import (
	"fmt"
	"strings"
)

const (
	boardPlayers = 2
	emptyCell    = -1
)

// CellMove claims the empty cell at (Row, Col) for the active player.
type CellMove struct {
	Row int
	Col int
}

func (m CellMove) String() string {
	return fmt.Sprintf("mark (%d,%d)", m.Row, m.Col)
}

// TicTacToeState is a position in tic-tac-toe on a rows x cols board. Each
// cell holds the owning player's index or emptyCell. Diagonal lines only
// count on square boards.
type TicTacToeState struct {
	rows  int
	cols  int
	cells [][]int
	mover int
}

type BoardOption func(s *TicTacToeState)

// WithDimensions sets the board size. Ignored unless both are positive.
func WithDimensions(rows, cols int) BoardOption {
	return func(s *TicTacToeState) {
		if rows > 0 && cols > 0 {
			s.rows = rows
			s.cols = cols
		}
	}
}

// WithBoard seeds the position from existing cell contents. The cells are
// deep-copied and the dimensions are taken from the slice shape.
func WithBoard(cells [][]int) BoardOption {
	return func(s *TicTacToeState) {
		s.rows = len(cells)
		s.cols = 0
		if s.rows > 0 {
			s.cols = len(cells[0])
		}
		s.cells = copyCells(cells)
	}
}

// NewTicTacToeState starts a game, by default on an empty 3x3 board with
// player 0 to move.
func NewTicTacToeState(options ...BoardOption) *TicTacToeState {
	s := &TicTacToeState{rows: 3, cols: 3}
	for _, option := range options {
		option(s)
	}
	if s.cells == nil {
		s.cells = make([][]int, s.rows)
		for i := range s.cells {
			s.cells[i] = make([]int, s.cols)
			for j := range s.cells[i] {
				s.cells[i][j] = emptyCell
			}
		}
	}
	return s
}

func copyCells(cells [][]int) [][]int {
	out := make([][]int, len(cells))
	for i, row := range cells {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

func (s *TicTacToeState) Player() int {
	return s.mover
}

// LegalMoves lists the empty cells in row-major order.
func (s *TicTacToeState) LegalMoves() []Move {
	var moves []Move
	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.cols; j++ {
			if s.cells[i][j] == emptyCell {
				moves = append(moves, CellMove{Row: i, Col: j})
			}
		}
	}
	return moves
}

func (s *TicTacToeState) Play(m Move) (State, error) {
	claim, ok := m.(CellMove)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a cell claim", ErrInvalidMove, m)
	}
	if claim.Row < 0 || claim.Row >= s.rows || claim.Col < 0 || claim.Col >= s.cols {
		return nil, fmt.Errorf("%w: (%d,%d) is off the board", ErrInvalidMove, claim.Row, claim.Col)
	}
	if s.cells[claim.Row][claim.Col] != emptyCell {
		return nil, fmt.Errorf("%w: (%d,%d) is already taken", ErrInvalidMove, claim.Row, claim.Col)
	}

	cells := copyCells(s.cells)
	cells[claim.Row][claim.Col] = s.mover
	return &TicTacToeState{
		rows:  s.rows,
		cols:  s.cols,
		cells: cells,
		mover: (s.mover + 1) % boardPlayers,
	}, nil
}

// IsTerminal is true on a completed line or a full board. A won position can
// still have empty cells, so this is not the same as LegalMoves being empty.
func (s *TicTacToeState) IsTerminal() bool {
	return s.full() || s.winner() != emptyCell
}

func (s *TicTacToeState) Utilities() []float64 {
	utilities := make([]float64, boardPlayers)
	winner := s.winner()
	if winner == emptyCell { // Draw or game still running
		return utilities
	}
	for i := range utilities {
		utilities[i] = -1
	}
	utilities[winner] = 1
	return utilities
}

// winner returns the player owning a full row, column, or diagonal, or
// emptyCell if there is none.
func (s *TicTacToeState) winner() int {
	for p := 0; p < boardPlayers; p++ {
		for i := 0; i < s.rows; i++ {
			if s.ownsRow(p, i) {
				return p
			}
		}
		for j := 0; j < s.cols; j++ {
			if s.ownsColumn(p, j) {
				return p
			}
		}
		if s.rows == s.cols && (s.ownsDiagonal(p, false) || s.ownsDiagonal(p, true)) {
			return p
		}
	}
	return emptyCell
}

func (s *TicTacToeState) ownsRow(p, i int) bool {
	for j := 0; j < s.cols; j++ {
		if s.cells[i][j] != p {
			return false
		}
	}
	return true
}

func (s *TicTacToeState) ownsColumn(p, j int) bool {
	for i := 0; i < s.rows; i++ {
		if s.cells[i][j] != p {
			return false
		}
	}
	return true
}

func (s *TicTacToeState) ownsDiagonal(p int, anti bool) bool {
	for i := 0; i < s.rows; i++ {
		j := i
		if anti {
			j = s.rows - i - 1
		}
		if s.cells[i][j] != p {
			return false
		}
	}
	return true
}

func (s *TicTacToeState) full() bool {
	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.cols; j++ {
			if s.cells[i][j] == emptyCell {
				return false
			}
		}
	}
	return true
}

func cellGlyph(owner int) string {
	switch owner {
	case 0:
		return "X"
	case 1:
		return "O"
	default:
		return "."
	}
}

func (s *TicTacToeState) String() string {
	var b strings.Builder
	b.WriteString(" ")
	for j := 0; j < s.cols; j++ {
		fmt.Fprintf(&b, " %d", j)
	}
	for i := 0; i < s.rows; i++ {
		fmt.Fprintf(&b, "\n%d ", i)
		glyphs := make([]string, s.cols)
		for j := 0; j < s.cols; j++ {
			glyphs[j] = cellGlyph(s.cells[i][j])
		}
		b.WriteString(strings.Join(glyphs, " "))
	}
	return b.String()
}
