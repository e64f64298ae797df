package game

import (
	"math/rand/v2"
	"time"
)

// FoodSpawner places food on a uniformly random empty cell.
type FoodSpawner struct {
	rng *rand.Rand
}

func NewFoodSpawner(seed uint64) *FoodSpawner {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodSpawner{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Spawn retypes one empty cell as Food. It fails with ErrNoSpaceForFood when
// the grid has no empty cell left.
func (f *FoodSpawner) Spawn(grid *Grid) (Position, error) {
	empty := grid.EmptyCells()
	if len(empty) == 0 {
		return Position{}, ErrNoSpaceForFood
	}

	pos := empty[f.rng.IntN(len(empty))]
	grid.SetCellType(pos, Food)
	return pos, nil
}
