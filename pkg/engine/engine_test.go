package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/config"
	"github.com/tessellate-games/territoryai/pkg/engine"
)

func single(sq board.Square) board.Move {
	return board.Move{{Square: sq}}
}

func TestEngine_SearchReturnsLegalOpeningMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "test-suite", engine.WithWorkers(2), engine.WithZobristSeed(1))
	defer e.Close()

	cfg := config.Default()
	cfg.AIMaxDepth = 1
	cfg.AISearchTimeMS = 2000

	req := engine.Request{
		Board:              board.NewBoard(cfg.BoardSize),
		CurrentPlayerIndex: board.PlayerIndex(board.A),
		TurnCount:          1,
		Config:             cfg,
	}
	reply, err := e.Search(ctx, req)
	require.NoError(t, err)
	require.Len(t, reply.BestMove, 1)
	assert.Equal(t, board.Interior, board.RegionOf(reply.BestMove[0].Square, cfg.BoardSize))
}

func TestEngine_SearchRejectsInvalidConfig(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "test-suite", engine.WithWorkers(1))
	defer e.Close()

	cfg := config.Default()
	cfg.BoardSize = 2 // below the N>=3 floor

	req := engine.Request{
		Board:              board.NewBoard(11),
		CurrentPlayerIndex: board.PlayerIndex(board.A),
		TurnCount:          1,
		Config:             cfg,
	}
	_, err := e.Search(ctx, req)
	var invalid *config.InvalidConfigError
	assert.ErrorAs(t, err, &invalid)
}

func TestEngine_SearchReturnsNoLegalMoveOnFullBoard(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test-engine", "test-suite", engine.WithWorkers(1))
	defer e.Close()

	cfg := config.Default()
	cfg.BoardSize = 3
	cfg.AIMaxDepth = 1
	cfg.AISearchTimeMS = 2000

	b := board.NewBoard(cfg.BoardSize)
	colors := [4]board.Color{board.A, board.B, board.C, board.D}
	i := 0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			b = board.ApplyMove(b, single(board.Square{R: r, C: c}), colors[i%4])
			i++
		}
	}

	req := engine.Request{
		Board:              b,
		CurrentPlayerIndex: board.PlayerIndex(board.A),
		TurnCount:          10,
		Config:             cfg,
	}
	_, err := e.Search(ctx, req)
	assert.ErrorIs(t, err, engine.ErrNoLegalMove)
}

func TestEngine_NameAndAuthor(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "territoryai", "tessellate-games")
	defer e.Close()

	assert.Contains(t, e.Name(), "territoryai")
	assert.Equal(t, "tessellate-games", e.Author())
}

func TestValidateConfig_RejectsNonPositiveDepth(t *testing.T) {
	cfg := config.Default()
	cfg.AIMaxDepth = 0
	err := engine.ValidateConfig(cfg)
	assert.Error(t, err)
}
