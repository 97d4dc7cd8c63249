package search

import (
	"fmt"
	"time"

	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/eval"
)

// PV represents the outcome of one fully-completed deepening iteration: the best root
// move found, its score, and diagnostics. Additive relative to spec §6's reply shape
// (Nodes/Time are optional extras for observability/logging).
type PV struct {
	Depth int
	Move  board.Move
	Score eval.Score
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v move=%v", p.Depth, p.Score, p.Nodes, p.Time, p.Move)
}
