package search

import (
	"context"

	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/eval"
)

// quiescence extends search over conversion-only moves to stabilize horizon effects.
// See spec §4.5.
func (w *Worker) quiescence(ctx context.Context, b *board.Board, depth int, alpha, beta eval.Score, playerIndex, turnCount int) eval.Score {
	if contextx.IsCancelled(ctx) {
		return eval.ZeroScore
	}

	k := board.ColorAt(playerIndex)

	if _, _, ok := board.CheckWinCondition(b); ok {
		return signEval(b, w.cfg, k)
	}

	w.nodes++

	standPat := signEval(b, w.cfg, k)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if depth == 0 {
		return alpha
	}

	moves := ConversionMoves(b, turnCount, k, w.cfg)
	if len(moves) == 0 {
		return alpha
	}

	next := (playerIndex + 1) % int(board.NumColors)
	ml := NewMoveList(moves)
	for {
		sm, ok := ml.Next()
		if !ok {
			break
		}
		child := board.ApplyMove(b, sm.Move, k)
		s := -w.quiescence(ctx, child, depth-1, -beta, -alpha, next, turnCount+1)
		if s > alpha {
			alpha = s
		}
		if alpha >= beta {
			return beta
		}
	}
	return alpha
}
