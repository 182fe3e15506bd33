package game

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	grundyPlayers     = 2
	defaultGrundyHeap = 11
)

// SplitMove splits heap Heap into two unequal parts, taking Take counters
// into the new smaller heap and leaving the rest.
type SplitMove struct {
	Heap int
	Take int
}

func (m SplitMove) String() string {
	return fmt.Sprintf("split heap %d into %d and rest", m.Heap, m.Take)
}

// GrundyState is a position in Grundy's game: a row of heaps, where a move
// splits one heap into two unequal positive parts. The player left without a
// move loses.
type GrundyState struct {
	heaps []int
	mover int
}

// NewGrundyState starts a game from the given heap sizes. With no arguments
// the game opens with a single heap of 11, as in the classic setup. Player 0
// moves first.
func NewGrundyState(heaps ...int) *GrundyState {
	if len(heaps) == 0 {
		heaps = []int{defaultGrundyHeap}
	}
	owned := make([]int, len(heaps))
	copy(owned, heaps)
	return &GrundyState{heaps: owned}
}

func (s *GrundyState) Player() int {
	return s.mover
}

// LegalMoves enumerates splits heap by heap, smaller part ascending. A heap
// of size h admits the takes 1..(h-1)/2, which excludes equal halves.
func (s *GrundyState) LegalMoves() []Move {
	var moves []Move
	for i, h := range s.heaps {
		for take := 1; take <= (h-1)/2; take++ {
			moves = append(moves, SplitMove{Heap: i, Take: take})
		}
	}
	return moves
}

func (s *GrundyState) Play(m Move) (State, error) {
	split, ok := m.(SplitMove)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a heap split", ErrInvalidMove, m)
	}
	if split.Heap < 0 || split.Heap >= len(s.heaps) {
		return nil, fmt.Errorf("%w: no heap %d", ErrInvalidMove, split.Heap)
	}
	h := s.heaps[split.Heap]
	if split.Take < 1 || split.Take > (h-1)/2 {
		return nil, fmt.Errorf("%w: cannot take %d from a heap of %d", ErrInvalidMove, split.Take, h)
	}

	heaps := make([]int, 0, len(s.heaps)+1)
	heaps = append(heaps, s.heaps[:split.Heap]...)
	heaps = append(heaps, split.Take, h-split.Take)
	heaps = append(heaps, s.heaps[split.Heap+1:]...)
	return &GrundyState{heaps: heaps, mover: (s.mover + 1) % grundyPlayers}, nil
}

// IsTerminal reports whether no heap can be split, i.e. every heap is 1 or 2.
func (s *GrundyState) IsTerminal() bool {
	for _, h := range s.heaps {
		if h > 2 {
			return false
		}
	}
	return true
}

func (s *GrundyState) Utilities() []float64 {
	utilities := make([]float64, grundyPlayers)
	if !s.IsTerminal() {
		return utilities
	}
	// The mover is stuck; the player who made the last split wins.
	for i := range utilities {
		utilities[i] = -1
	}
	utilities[(s.mover+grundyPlayers-1)%grundyPlayers] = 1
	return utilities
}

func (s *GrundyState) String() string {
	parts := make([]string, len(s.heaps))
	for i, h := range s.heaps {
		parts[i] = strconv.Itoa(h)
	}
	return strings.Join(parts, " ")
}
