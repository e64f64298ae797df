package game

// Board is the read-only view a Strategy steers from.
type Board struct {
	Grid  *Grid
	Snake *Snake
	Food  Position
}

// CellTypeAt treats anything outside the grid as wall.
func (b Board) CellTypeAt(p Position) CellType {
	if !b.Grid.InBounds(p) {
		return Wall
	}
	return b.Grid.TypeAt(p)
}

// Strategy steers the snake in place of the keyboard. ok=false keeps the heading.
type Strategy interface {
	NextDirection(board Board) (dir Direction, ok bool, err error)
}
