package game

// CellType is the semantic content of a grid cell.
type CellType int

const (
	Empty CellType = iota
	Wall
	Food
	SnakeHead
	SnakeBody
)

func (t CellType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Food:
		return "food"
	case SnakeHead:
		return "head"
	case SnakeBody:
		return "body"
	}
	return "unknown"
}

// Cell is one grid square. Dirty means it changed since the last render pass.
type Cell struct {
	X     int
	Y     int
	Type  CellType
	Dirty bool
}

// SetType retypes the cell and marks it for redraw, even when the type is unchanged.
func (c *Cell) SetType(t CellType) {
	c.Type = t
	c.Dirty = true
}

// Grid owns every cell of the playing field, indexed [row][col].
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
}

func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for row := 0; row < height; row++ {
		cells[row] = make([]Cell, width)
		for col := 0; col < width; col++ {
			cells[row][col] = Cell{X: col, Y: row, Type: Empty}
		}
	}

	return &Grid{Width: width, Height: height, Cells: cells}
}

func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// IsBorder reports whether p lies on the outer wall ring.
func (g *Grid) IsBorder(p Position) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.Width-1 || p.Y == g.Height-1
}

// CellAt panics when p is out of bounds; callers check InBounds first.
func (g *Grid) CellAt(p Position) *Cell {
	return &g.Cells[p.Y][p.X]
}

func (g *Grid) TypeAt(p Position) CellType {
	return g.Cells[p.Y][p.X].Type
}

func (g *Grid) SetCellType(p Position, t CellType) {
	g.Cells[p.Y][p.X].SetType(t)
}

// buildWalls types the border ring as Wall. The first full render draws every
// cell anyway, so the ring is not marked dirty.
func (g *Grid) buildWalls() {
	for row := range g.Cells {
		for col := range g.Cells[row] {
			if g.IsBorder(Position{X: col, Y: row}) {
				g.Cells[row][col].Type = Wall
			}
		}
	}
}

// EmptyCells lists the coordinates of every Empty cell in row-major order.
func (g *Grid) EmptyCells() []Position {
	var empty []Position
	for row := range g.Cells {
		for col := range g.Cells[row] {
			if g.Cells[row][col].Type == Empty {
				empty = append(empty, Position{X: col, Y: row})
			}
		}
	}
	return empty
}

func (g *Grid) forEach(fn func(c *Cell)) {
	for row := range g.Cells {
		for col := range g.Cells[row] {
			fn(&g.Cells[row][col])
		}
	}
}
