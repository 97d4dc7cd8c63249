// Package engine ties the board, evaluator, move generator and search orchestrator
// into a single entry point matching spec §6's external interfaces.
package engine

import (
	"context"
	"fmt"
	"runtime"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/config"
	"github.com/tessellate-games/territoryai/pkg/search/searchctl"
)

var version = build.NewVersion(0, 1, 0)

// Engine encapsulates the worker pool and Zobrist tables for a board size. Safe for
// sequential use; concurrent Search calls are not supported (the orchestrator reuses
// the same worker pool for one search at a time).
type Engine struct {
	name, author string

	orch *searchctl.Orchestrator
	zt   *board.ZobristTable
	seed int64

	boardSize int
	workers   int
}

// Option is an engine creation option.
type Option func(*Engine)

// WithWorkers overrides the worker pool size (default: runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithZobristSeed configures the random seed used for Zobrist table generation.
func WithZobristSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// New constructs an engine and starts its worker pool.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author, workers: runtime.NumCPU()}
	for _, fn := range opts {
		fn(e)
	}
	if e.workers < 1 {
		e.workers = 1
	}
	e.orch = searchctl.NewOrchestrator(e.workers)

	logw.Infof(ctx, "Initialized engine: %v, workers=%v", e.Name(), e.workers)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Close stops the worker pool. The engine must not be used afterwards.
func (e *Engine) Close() {
	e.orch.Close()
}

// Search validates the request, reallocates Zobrist tables if the board size changed,
// reinitializes every worker's state, and runs a root-parallel iterative-deepening
// search. Returns
// ErrNoLegalMove if the root position has no legal move; returns an *InvalidConfigError
// if the configuration is malformed. Timeouts and worker faults are handled internally
// and never surfaced as errors (spec §7).
func (e *Engine) Search(ctx context.Context, req Request) (Reply, error) {
	if err := req.Config.Validate(); err != nil {
		return Reply{}, err
	}

	if e.zt == nil || req.Config.BoardSize != e.boardSize {
		e.zt = board.NewZobristTable(req.Config.BoardSize, e.seed)
		e.boardSize = req.Config.BoardSize
		logw.Infof(ctx, "Allocated Zobrist tables for boardSize=%v", e.boardSize)
	}
	e.orch.Init(req.Config, e.zt)

	logw.Infof(ctx, "Search turn=%v player=%v config=%+v", req.TurnCount, req.CurrentPlayerIndex, req.Config)

	result, err := e.orch.Search(ctx, searchctl.Request{
		Board:              req.Board,
		CurrentPlayerIndex: req.CurrentPlayerIndex,
		TurnCount:          req.TurnCount,
		Config:             req.Config,
		DepthLimit:         req.DepthLimit,
	})
	if err != nil {
		if err == searchctl.ErrNoLegalMove {
			logw.Infof(ctx, "Search: no legal move")
			return Reply{}, ErrNoLegalMove
		}
		return Reply{}, err
	}

	logw.Infof(ctx, "Search done: move=%v score=%v depth=%v nodes=%v", result.BestMove, result.Score, result.Depth, result.Nodes)
	return Reply{BestMove: result.BestMove, Score: result.Score, Depth: result.Depth, Nodes: result.Nodes}, nil
}

// ValidateConfig exposes config validation directly, for callers that want to reject a
// request before constructing a board (spec §7 InvalidConfig).
func ValidateConfig(cfg config.Config) error {
	return cfg.Validate()
}
