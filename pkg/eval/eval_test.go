package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/config"
	"github.com/tessellate-games/territoryai/pkg/eval"
)

func single(sq board.Square) board.Move {
	return board.Move{{Square: sq}}
}

func TestEvaluate_EmptyBoardIsZero(t *testing.T) {
	cfg := config.Default()
	b := board.NewBoard(cfg.BoardSize)
	assert.Equal(t, eval.ZeroScore, eval.Evaluate(b, cfg))
}

func TestEvaluate_PieceAdvantageFavorsTeam1(t *testing.T) {
	cfg := config.Default()
	b := board.NewBoard(cfg.BoardSize)
	b = board.ApplyMove(b, single(board.Square{R: 5, C: 5}), board.A)

	got := eval.Evaluate(b, cfg)
	assert.Greater(t, got, eval.ZeroScore, "an extra team-1 piece must score positive")
}

func TestEvaluate_TerminalWin(t *testing.T) {
	cfg := config.Default()
	b := board.NewBoard(cfg.BoardSize)
	for r := 0; r <= cfg.BoardSize-1; r++ {
		b = board.ApplyMove(b, single(board.Square{R: r, C: 5}), board.A)
	}
	assert.Equal(t, eval.Score(cfg.WinScore), eval.Evaluate(b, cfg))
}

// invariant 4 — evaluate is antisymmetric under swapping team identity (A<->B, C<->D).
func TestEvaluate_AntisymmetricUnderTeamSwap(t *testing.T) {
	cfg := config.Default()

	b := board.NewBoard(cfg.BoardSize)
	b = board.ApplyMove(b, single(board.Square{R: 5, C: 5}), board.A)
	b = board.ApplyMove(b, single(board.Square{R: 5, C: 8}), board.B)
	b = board.ApplyMove(b, single(board.Square{R: 3, C: 3}), board.B)

	swapped := board.NewBoard(cfg.BoardSize)
	swapped = board.ApplyMove(swapped, single(board.Square{R: 5, C: 5}), board.B)
	swapped = board.ApplyMove(swapped, single(board.Square{R: 5, C: 8}), board.A)
	swapped = board.ApplyMove(swapped, single(board.Square{R: 3, C: 3}), board.A)

	assert.Equal(t, -eval.Evaluate(b, cfg), eval.Evaluate(swapped, cfg))
}

func TestUnit(t *testing.T) {
	assert.Equal(t, eval.Score(1), eval.Unit(board.Team1))
	assert.Equal(t, eval.Score(-1), eval.Unit(board.Team2))
}
