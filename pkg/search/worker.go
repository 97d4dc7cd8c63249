// Package search implements the negamax/PVS/quiescence search core (spec §4.5).
package search

import (
	"context"
	"errors"

	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/config"
	"github.com/tessellate-games/territoryai/pkg/eval"
)

// ErrHalted indicates the search was halted (context cancelled) before completion.
var ErrHalted = errors.New("search halted")

// Worker is a single logical executor holding private, per-search state: a
// transposition table and a history heuristic table. Neither is shared with any other
// worker; state persists across jobs within one whole-engine search and is cleared by
// Init. Not safe for concurrent use by more than one goroutine at a time. See spec §4.5,
// §5.
type Worker struct {
	cfg     config.Config
	zt      *board.ZobristTable
	tt      TranspositionTable
	history *HistoryTable
	nodes   uint64
}

// NewWorker returns an uninitialized worker; call Init before the first Search.
func NewWorker() *Worker {
	return &Worker{tt: NoTranspositionTable{}}
}

// Init (re)initializes the worker for a new whole-engine search: the transposition
// table and history heuristic are cleared (or replaced, if tt is non-nil).
func (w *Worker) Init(cfg config.Config, zt *board.ZobristTable, tt TranspositionTable) {
	w.cfg = cfg
	w.zt = zt
	if tt == nil {
		tt = NoTranspositionTable{}
	}
	w.tt = tt
	w.tt.Clear()
	w.history = NewHistoryTable(cfg.BoardSize)
}

// Search runs negamax with alpha-beta pruning to the given depth from b, where
// playerIndex identifies the side to move and turnCount the live turn counter. The
// returned score is from the side-to-move's perspective. See spec §4.5.
func (w *Worker) Search(ctx context.Context, b *board.Board, depth int, alpha, beta eval.Score, playerIndex, turnCount int) (eval.Score, uint64, error) {
	w.nodes = 0
	score := w.negamax(ctx, b, depth, alpha, beta, playerIndex, turnCount)
	if contextx.IsCancelled(ctx) {
		return eval.ZeroScore, w.nodes, ErrHalted
	}
	return score, w.nodes, nil
}

func signEval(b *board.Board, cfg config.Config, k board.Color) eval.Score {
	return eval.Evaluate(b, cfg) * eval.Unit(board.TeamOf(k))
}

// negamax implements spec §4.5 steps 1-6: TT probe, leaf/quiescence dispatch, terminal
// win test, history-biased move ordering, and PVS-scouted recursion.
func (w *Worker) negamax(ctx context.Context, b *board.Board, depth int, alpha, beta eval.Score, playerIndex, turnCount int) eval.Score {
	if contextx.IsCancelled(ctx) {
		return eval.ZeroScore
	}

	k := board.ColorAt(playerIndex)
	hash := w.zt.Hash(b, k)
	origAlpha := alpha

	if entry, ok := w.tt.Read(hash); ok && entry.Depth >= depth {
		switch entry.Bound {
		case ExactBound:
			return entry.Score
		case AlphaBound:
			if entry.Score <= alpha {
				return alpha
			}
		case BetaBound:
			if entry.Score >= beta {
				return beta
			}
		}
	}

	if depth == 0 {
		return w.quiescence(ctx, b, w.cfg.QSearchMaxDepth, alpha, beta, playerIndex, turnCount)
	}

	if _, _, ok := board.CheckWinCondition(b); ok {
		return signEval(b, w.cfg, k)
	}

	w.nodes++

	moves := OrderedMoves(b, turnCount, k, w.cfg)
	if len(moves) == 0 {
		return signEval(b, w.cfg, k)
	}
	for i := range moves {
		moves[i].Score += eval.Score(w.history.WeightOf(moves[i].Move))
	}
	ml := NewMoveList(moves)

	next := (playerIndex + 1) % int(board.NumColors)
	bestValue := eval.NegInfScore

	for i := 0; ; i++ {
		sm, ok := ml.Next()
		if !ok {
			break
		}
		child := board.ApplyMove(b, sm.Move, k)

		var s eval.Score
		if i == 0 {
			s = -w.negamax(ctx, child, depth-1, -beta, -alpha, next, turnCount+1)
		} else {
			s = -w.negamax(ctx, child, depth-1, -alpha-1, -alpha, next, turnCount+1)
			if alpha < s && s < beta {
				s = -w.negamax(ctx, child, depth-1, -beta, -alpha, next, turnCount+1)
			}
		}

		if s > bestValue {
			bestValue = s
		}
		if bestValue > alpha {
			alpha = bestValue
		}
		if alpha >= beta {
			w.history.Bump(sm.Move, depth)
			break
		}
	}

	bound := ExactBound
	switch {
	case bestValue <= origAlpha:
		bound = AlphaBound
	case bestValue >= beta:
		bound = BetaBound
	}
	w.tt.Write(hash, Entry{Score: bestValue, Depth: depth, Bound: bound})
	return bestValue
}
