package search

import (
	"container/heap"
	"fmt"

	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/eval"
)

// ScoredMove pairs a candidate move with its heuristic ordering score.
type ScoredMove struct {
	Move  board.Move
	Score eval.Score
}

// MoveList is a move priority queue for best-first consumption, adapted from the
// chess-engine idiom of ordering pseudo-legal moves by a priority function instead of
// pre-sorting a slice outright.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a move list over the given scored moves, best score first.
func NewMoveList(moves []ScoredMove) *MoveList {
	h := make(moveHeap, len(moves))
	copy(h, moves)
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the highest-priority remaining move.
func (ml *MoveList) Next() (ScoredMove, bool) {
	if ml.h.Len() == 0 {
		return ScoredMove{}, false
	}
	return heap.Pop(&ml.h).(ScoredMove), true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].Move, ml.Size())
}

type moveHeap []ScoredMove

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].Score > h[j].Score }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { *h = append(*h, x.(ScoredMove)) }
func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
