package market

import "strings"

// Direction is the side of a trade.
type Direction string

const (
	Long  Direction = "Long"
	Short Direction = "Short"
)

func (d Direction) String() string { return string(d) }

func (d Direction) Valid() bool {
	return d == Long || d == Short
}

// Directions returns the valid directions in display order.
func Directions() []Direction {
	return []Direction{Long, Short}
}

// ParseDirection normalizes free-form input to a Direction. Anything
// that is not recognizably short is treated as long, mirroring the
// P&L sign convention where only an exact "Short" flips the sign.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short", "sell":
		return Short, true
	case "long", "buy":
		return Long, true
	default:
		return Long, false
	}
}
