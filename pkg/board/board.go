// Package board contains the territorial board representation and placement rules.
package board

import "strings"

// cell is a packed occupant record: a flat row-major array of these is the board's
// entire state, following the same "pack the piece into a small fixed record" idiom
// as a bitboard-based chess board, adapted here to a sparse 4-colored grid instead.
type cell struct {
	piece    Piece
	occupied bool
}

// Board is an immutable N×N grid snapshot. Operations never mutate a Board in place;
// ApplyMove returns a fresh Board, so a Board can be safely shared across goroutines
// once constructed.
type Board struct {
	n     int
	cells []cell
}

// NewBoard returns an empty n×n board.
func NewBoard(n int) *Board {
	return &Board{n: n, cells: make([]cell, n*n)}
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.n
}

func (b *Board) index(sq Square) int {
	return sq.R*b.n + sq.C
}

// Get returns the piece at sq, if occupied.
func (b *Board) Get(sq Square) (Piece, bool) {
	c := b.cells[b.index(sq)]
	return c.piece, c.occupied
}

// Occupied reports whether sq holds a piece.
func (b *Board) Occupied(sq Square) bool {
	return b.cells[b.index(sq)].occupied
}

// clone returns a deep, independent copy of b.
func (b *Board) clone() *Board {
	cells := make([]cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{n: b.n, cells: cells}
}

// set places (or overwrites) the piece at sq. Only used while building a fresh Board.
func (b *Board) set(sq Square, p Piece) {
	b.cells[b.index(sq)] = cell{piece: p, occupied: true}
}

// Squares iterates every coordinate on the board in row-major order.
func (b *Board) Squares(fn func(sq Square)) {
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			fn(Square{r, c})
		}
	}
}

// Occupants returns every occupied square and its piece.
func (b *Board) Occupants() []struct {
	Square Square
	Piece  Piece
} {
	out := make([]struct {
		Square Square
		Piece  Piece
	}, 0, len(b.cells))
	b.Squares(func(sq Square) {
		if p, ok := b.Get(sq); ok {
			out = append(out, struct {
				Square Square
				Piece  Piece
			}{sq, p})
		}
	})
	return out
}

// IsEmpty reports whether no cell on the board is occupied.
func (b *Board) IsEmpty() bool {
	for _, c := range b.cells {
		if c.occupied {
			return false
		}
	}
	return true
}

// IsValidPlacement reports whether sq is a legal target for a new placement given the
// placements already chosen this turn (chosen). See spec §4.1.
func IsValidPlacement(b *Board, chosen []Square, sq Square) bool {
	if !sq.InBounds(b.Size()) {
		return false
	}
	if b.Occupied(sq) {
		return false
	}
	for _, p := range chosen {
		if Near(sq, p) {
			return false
		}
	}

	switch RegionOf(sq, b.Size()) {
	case Interior:
		return true
	case Preborder:
		if b.IsEmpty() && len(chosen) == 0 {
			return false
		}
		return hasOccupiedNeighborOfRegion(b, sq, Interior)
	case Border:
		if b.IsEmpty() && len(chosen) == 0 {
			return false
		}
		return hasOccupiedNeighborOfRegion(b, sq, Preborder)
	case Corner:
		if b.IsEmpty() && len(chosen) == 0 {
			return false
		}
		for _, d := range diagonals {
			cand := Square{sq.R + d[0], sq.C + d[1]}
			if cand.InBounds(b.Size()) && b.Occupied(cand) && RegionOf(cand, b.Size()) == Preborder {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func hasOccupiedNeighborOfRegion(b *Board, sq Square, want Region) bool {
	for _, n := range neighbors8(sq, b.Size()) {
		if b.Occupied(n) && RegionOf(n, b.Size()) == want {
			return true
		}
	}
	return false
}

// age returns a copy of b in which every cell of color k with posture New is set to Old.
// Idempotent: applying it twice in a row is equivalent to applying it once.
func age(b *Board, k Color) *Board {
	out := b.clone()
	out.Squares(func(sq Square) {
		p, ok := out.Get(sq)
		if ok && p.Color == k && p.Posture == New {
			out.set(sq, Piece{Color: k, Posture: Old})
		}
	})
	return out
}

// GetConversions scans the 8 compass directions from anchor and returns the cells that
// would be captured (flanked) by a piece of color k placed at anchor. See spec §4.1.
func GetConversions(b *Board, anchor Square, k Color) []Square {
	var captured []Square

	for _, d := range directions {
		var lineColor Color
		var haveLine bool
		var candidates []Square

		for i := 1; ; i++ {
			cur := Square{anchor.R + d[0]*i, anchor.C + d[1]*i}
			if !cur.InBounds(b.Size()) {
				break
			}
			p, ok := b.Get(cur)
			if !ok {
				break
			}

			if i == 1 {
				if p.Posture == New || IsAlly(k, p.Color) {
					break
				}
				lineColor = p.Color
				haveLine = true
				candidates = append(candidates, cur)
				continue
			}

			if haveLine && p.Posture == Old && p.Color == lineColor {
				candidates = append(candidates, cur)
				continue
			}
			if p.Color == k {
				captured = append(captured, candidates...)
			}
			break
		}
	}

	return captured
}

// ApplyMove returns a fresh Board reflecting the turn-start aging of k's pieces, the
// placements in m (each recorded as New), and the conversions each placement triggers.
// Conversions are resolved placement by placement, in order, against the board holding
// all of m's placements and the recolorings of the placements before it.
func ApplyMove(b *Board, m Move, k Color) *Board {
	out := age(b, k)
	for _, p := range m {
		out.set(p.Square, Piece{Color: k, Posture: New})
	}
	for _, p := range m {
		for _, captured := range GetConversions(out, p.Square, k) {
			piece, _ := out.Get(captured)
			out.set(captured, Piece{Color: k, Posture: piece.Posture})
		}
	}
	return out
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			if p, ok := b.Get(Square{r, c}); ok {
				sb.WriteString(p.String())
			} else {
				sb.WriteString(".")
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
