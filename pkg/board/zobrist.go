package board

import "math/rand"

// ZobristHash is a 32-bit position hash, per spec §4.4. Collisions are tolerated; the
// transposition table treats it only as an optimization, never as ground truth.
type ZobristHash uint32

const numPieceIndices = 2 * int(NumColors) // colorIndex + (old ? 4 : 0)

// ZobristTable is a pseudo-randomized table for computing a position hash, sized for a
// particular board dimension. See spec §4.4.
type ZobristTable struct {
	n      int
	pieces [][]uint32 // [square index][pieceIndex]
	turn   [NumColors]uint32
}

// NewZobristTable populates a fresh table for an n×n board from the given seed.
func NewZobristTable(n int, seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))

	t := &ZobristTable{
		n:      n,
		pieces: make([][]uint32, n*n),
	}
	for sq := range t.pieces {
		row := make([]uint32, numPieceIndices)
		for pi := range row {
			row[pi] = r.Uint32()
		}
		t.pieces[sq] = row
	}
	for c := ZeroColor; c < NumColors; c++ {
		t.turn[c] = r.Uint32()
	}
	return t
}

// Hash computes the Zobrist hash for board b with the given side to move.
func (t *ZobristTable) Hash(b *Board, sideToMove Color) ZobristHash {
	var h uint32
	b.Squares(func(sq Square) {
		if p, ok := b.Get(sq); ok {
			h ^= t.pieces[b.index(sq)][p.index()]
		}
	})
	h ^= t.turn[sideToMove]
	return ZobristHash(h)
}
