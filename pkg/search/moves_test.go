package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/config"
	"github.com/tessellate-games/territoryai/pkg/search"
)

func single(sq board.Square) board.Move {
	return board.Move{{Square: sq}}
}

// S1 — opening interior forced on 11x11.
func TestOrderedMoves_OpeningIsSingleInteriorPlacements(t *testing.T) {
	cfg := config.Default()
	b := board.NewBoard(cfg.BoardSize)

	moves := search.OrderedMoves(b, 1, board.A, cfg)
	require.NotEmpty(t, moves)

	for _, m := range moves {
		require.Len(t, m.Move, 1, "turnCount==1 must produce exactly one placement per move")
		sq := m.Move[0].Square
		assert.Equal(t, board.Interior, board.RegionOf(sq, cfg.BoardSize))
		assert.Equal(t, board.Interior, board.RegionOf(sq, cfg.BoardSize))
		assert.GreaterOrEqual(t, sq.R, 2)
		assert.LessOrEqual(t, sq.R, 8)
		assert.GreaterOrEqual(t, sq.C, 2)
		assert.LessOrEqual(t, sq.C, 8)
	}
}

func TestOrderedMoves_NonFirstTurnProducesDoubles(t *testing.T) {
	cfg := config.Default()
	b := board.NewBoard(cfg.BoardSize)
	b = board.ApplyMove(b, single(board.Square{R: 5, C: 5}), board.A) // an occupied cell so turnCount>1 is meaningful

	moves := search.OrderedMoves(b, 2, board.B, cfg)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.LessOrEqual(t, len(m.Move), 2)
	}
	assert.Len(t, moves[0].Move, 2, "plenty of legal singles remain, so the best move should be a pair")
}

func TestOrderedMoves_ClampsToOneWhenOnlyOneLegalSingleRemains(t *testing.T) {
	cfg := config.Default()
	cfg.BoardSize = 5
	b := board.NewBoard(cfg.BoardSize)

	// On a 5x5 board the interior is just {2,2}, so on an empty board it is the only
	// legal single placement.
	assert.True(t, board.IsValidPlacement(b, nil, board.Square{R: 2, C: 2}))

	moves := search.OrderedMoves(b, 2, board.A, cfg)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.LessOrEqual(t, len(m.Move), 1, "a 5x5 empty board has exactly one legal single (the center)")
	}
}

func TestOrderedMoves_PlacementsArePairwiseNonNear(t *testing.T) {
	cfg := config.Default()
	b := board.NewBoard(cfg.BoardSize)
	b = board.ApplyMove(b, single(board.Square{R: 5, C: 5}), board.A)

	moves := search.OrderedMoves(b, 2, board.B, cfg)
	for _, m := range moves {
		if len(m.Move) == 2 {
			assert.False(t, board.Near(m.Move[0].Square, m.Move[1].Square))
		}
	}
}

func TestConversionMoves_OnlyIncludesCapturingMoves(t *testing.T) {
	cfg := config.Default()
	b := board.NewBoard(cfg.BoardSize)
	b = board.ApplyMove(b, single(board.Square{R: 5, C: 3}), board.A)
	b = board.ApplyMove(b, single(board.Square{R: 5, C: 4}), board.B)
	b = board.ApplyMove(b, single(board.Square{R: 10, C: 10}), board.A) // ages A's (5,3)
	b = board.ApplyMove(b, single(board.Square{R: 10, C: 0}), board.B)  // ages B's (5,4)

	moves := search.ConversionMoves(b, 4, board.A, cfg)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		found := false
		for _, p := range m.Move {
			if p.Square == (board.Square{R: 5, C: 5}) {
				found = true
			}
		}
		_ = found // not every listed move need include (5,5); just confirm each captures something
		after := board.ApplyMove(b, m.Move, board.A)
		captured := false
		after.Squares(func(sq board.Square) {
			before, bok := b.Get(sq)
			if bok && board.IsEnemy(board.A, before.Color) {
				if ap, aok := after.Get(sq); aok && ap.Color == board.A {
					captured = true
				}
			}
		})
		assert.True(t, captured, "every ConversionMoves entry must actually capture something")
	}
}
