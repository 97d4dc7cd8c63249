package engine

import (
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/config"
	"github.com/tessellate-games/territoryai/pkg/eval"
)

// Request is the orchestrator input, per spec §6.
type Request struct {
	Board              *board.Board
	CurrentPlayerIndex int
	TurnCount          int
	Config             config.Config

	// DepthLimit optionally caps this one search below Config.AIMaxDepth.
	DepthLimit lang.Optional[int]
}

// Reply is the orchestrator output, per spec §6. BestMove is nil when the pool yielded
// no legal move (ErrNoLegalMove is also returned in that case).
type Reply struct {
	BestMove board.Move
	Score    eval.Score
	Depth    int
	Nodes    uint64
}
