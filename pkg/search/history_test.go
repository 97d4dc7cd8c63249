package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tessellate-games/territoryai/pkg/board"
	"github.com/tessellate-games/territoryai/pkg/search"
)

func TestHistoryTable_BumpAccumulatesDepthSquared(t *testing.T) {
	h := search.NewHistoryTable(11)
	sq := board.Square{R: 3, C: 4}

	h.Bump(single(sq), 3)
	assert.Equal(t, int32(9), h.Get(sq))

	h.Bump(single(sq), 4)
	assert.Equal(t, int32(9+16), h.Get(sq))
}

func TestHistoryTable_WeightOfSumsAllPlacements(t *testing.T) {
	h := search.NewHistoryTable(11)
	a, b := board.Square{R: 1, C: 1}, board.Square{R: 2, C: 2}
	h.Bump(single(a), 2)
	h.Bump(single(b), 3)

	m := board.Move{{Square: a}, {Square: b}}
	assert.Equal(t, int32(4+9), h.WeightOf(m))
}

func TestHistoryTable_ClearResetsToZero(t *testing.T) {
	h := search.NewHistoryTable(11)
	sq := board.Square{R: 5, C: 5}
	h.Bump(single(sq), 5)
	assert.NotZero(t, h.Get(sq))

	h.Clear()
	assert.Zero(t, h.Get(sq))
}

func TestHistoryTable_UnbumpedSquareIsZero(t *testing.T) {
	h := search.NewHistoryTable(11)
	assert.Zero(t, h.Get(board.Square{R: 0, C: 0}))
}
