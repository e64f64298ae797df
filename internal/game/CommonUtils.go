package game

import "math"

// Position addresses a cell by column (X) and row (Y).
type Position struct {
	X, Y int
}

// Step returns the position one unit away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is a heading on the grid. Rows grow downward.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// directions is the fixed scan order used by parsing and the default strategy.
var directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ParseDirection accepts the lower-case names produced by String.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range directions {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// isQuarterTurn reports whether going from one heading to the other is a 90° turn.
func isQuarterTurn(from, to Direction) bool {
	return from != to && from.Opposite() != to
}

func GetManhattanDistance(a, b Position) int {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	return int(dx + dy)
}
