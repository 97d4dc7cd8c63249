package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/config"
	"github.com/tessellate-games/territoryai/pkg/engine"
)

var (
	boardSize  = flag.Int("size", 11, "Board dimension N")
	timeMS     = flag.Int("time", 5000, "Search time budget in milliseconds")
	maxDepth   = flag.Int("depth", 24, "Search depth cap")
	depthLimit = flag.Int("depth_limit", 0, "Optional per-run depth cap below -depth (0 disables)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: territoryai [options]

territoryai runs one root-parallel search from an empty board and prints the chosen
move.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	cfg := config.Default()
	cfg.BoardSize = *boardSize
	cfg.AISearchTimeMS = *timeMS
	cfg.AIMaxDepth = *maxDepth

	if err := cfg.Validate(); err != nil {
		logw.Exitf(ctx, "Invalid config: %v", err)
	}

	e := engine.New(ctx, "territoryai", "tessellate-games")
	defer e.Close()

	req := engine.Request{
		Board:              board.NewBoard(cfg.BoardSize),
		CurrentPlayerIndex: board.PlayerIndex(board.A),
		TurnCount:          1,
		Config:             cfg,
	}
	if *depthLimit > 0 {
		req.DepthLimit = lang.Some(*depthLimit)
	}

	reply, err := e.Search(ctx, req)
	if err != nil {
		logw.Exitf(ctx, "Search failed: %v", err)
	}

	fmt.Printf("move=%v score=%v depth=%v nodes=%v\n", reply.BestMove, reply.Score, reply.Depth, reply.Nodes)
}
