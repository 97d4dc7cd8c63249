package search

import "github.com/tessellate-games/territoryai/pkg/board"

// HistoryTable tracks how often a placement at each cell has produced a beta cutoff,
// biasing future move ordering towards historically strong squares. Shape N×N of
// nonnegative integers; cleared on init or when board size changes. See spec §4.5.
type HistoryTable struct {
	n     int
	score []int32
}

// NewHistoryTable returns a cleared table for an n×n board.
func NewHistoryTable(n int) *HistoryTable {
	return &HistoryTable{n: n, score: make([]int32, n*n)}
}

func (h *HistoryTable) Clear() {
	for i := range h.score {
		h.score[i] = 0
	}
}

func (h *HistoryTable) index(sq board.Square) int {
	return sq.R*h.n + sq.C
}

// Get returns the accumulated history weight of sq.
func (h *HistoryTable) Get(sq board.Square) int32 {
	return h.score[h.index(sq)]
}

// Bump records a beta cutoff at depth for every placement in m.
func (h *HistoryTable) Bump(m board.Move, depth int) {
	delta := int32(depth * depth)
	for _, p := range m {
		h.score[h.index(p.Square)] += delta
	}
}

// WeightOf sums the history weight of every placement in m.
func (h *HistoryTable) WeightOf(m board.Move) int32 {
	var total int32
	for _, p := range m {
		total += h.Get(p.Square)
	}
	return total
}
