// Package eval contains static position evaluation for the territorial board game.
package eval

import "fmt"

// Score is a signed evaluation in material-equivalent units, positive favoring team 1.
// Widened to int32 relative to a typical chess Score int16, since the extent-squared
// territorial bonus (spec §4.2) can exceed int16 range on larger boards.
type Score int32

const (
	NegInfScore Score = -1 << 30
	InfScore    Score = 1 << 30
	ZeroScore   Score = 0
)

func (s Score) String() string {
	return fmt.Sprintf("%d", s)
}

func (s Score) Negate() Score {
	return -s
}

// Max returns the larger of a and b.
func Max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
