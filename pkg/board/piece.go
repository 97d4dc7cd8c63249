package board

// Posture distinguishes a piece placed this turn from a settled one. 1 bit.
type Posture uint8

const (
	New Posture = iota
	Old
)

func (p Posture) String() string {
	if p == New {
		return "new"
	}
	return "old"
}

// Piece is a colored, postured occupant of a cell. 3 bits.
type Piece struct {
	Color   Color
	Posture Posture
}

// index returns the [0,8) Zobrist piece index: colorIndex + (old ? 4 : 0).
func (p Piece) index() int {
	idx := int(p.Color)
	if p.Posture == Old {
		idx += int(NumColors)
	}
	return idx
}

func (p Piece) String() string {
	if p.Posture == New {
		return p.Color.String() + "*"
	}
	return p.Color.String()
}
