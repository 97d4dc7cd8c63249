package board

// Color represents the controller of a piece: one of four players. 2 bits.
type Color uint8

const (
	A Color = iota
	B
	C
	D
)

const (
	ZeroColor Color = 0
	NumColors Color = 4
)

// Colors lists the four colors in stable turn order, matching the player index used
// throughout the search (playerIndex 0..3).
var Colors = [NumColors]Color{A, B, C, D}

// Team identifies one of the two alliances.
type Team uint8

const (
	Team1 Team = iota
	Team2
)

// TeamOf returns the alliance a color belongs to: {A,C} are Team1, {B,D} are Team2.
func TeamOf(c Color) Team {
	if c == A || c == C {
		return Team1
	}
	return Team2
}

// Ally returns the teammate of c.
func Ally(c Color) Color {
	switch c {
	case A:
		return C
	case C:
		return A
	case B:
		return D
	default:
		return B
	}
}

// IsAlly reports whether other is c itself or c's teammate.
func IsAlly(c, other Color) bool {
	return other == c || other == Ally(c)
}

// IsEnemy reports whether other is on the opposing team from c.
func IsEnemy(c, other Color) bool {
	return !IsAlly(c, other)
}

func (c Color) String() string {
	switch c {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	default:
		return "?"
	}
}

func (t Team) String() string {
	if t == Team1 {
		return "team1"
	}
	return "team2"
}

// PlayerIndex returns the turn-order index (0..3) for a color, matching Colors.
func PlayerIndex(c Color) int {
	return int(c)
}

// ColorAt returns the color at the given turn-order index, wrapping mod 4.
func ColorAt(playerIndex int) Color {
	return Colors[((playerIndex%int(NumColors))+int(NumColors))%int(NumColors)]
}
