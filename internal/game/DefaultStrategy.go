package game

import "math"

// DefaultStrategy heads for the food along legal, non-fatal moves. A move whose
// reachable area cannot hold the snake is only taken when nothing else is left.
type DefaultStrategy struct{}

func (s *DefaultStrategy) NextDirection(board Board) (Direction, bool, error) {
	heading := board.Snake.Heading
	head := board.Snake.Head

	type candidate struct {
		dir     Direction
		dist    int
		roomy   bool
		forward bool
	}
	var moves []candidate

	for _, dir := range directions {
		// A reversal would run into the neck.
		if dir == heading.Opposite() {
			continue
		}

		next := head.Step(dir)
		switch board.CellTypeAt(next) {
		case Wall, SnakeBody, SnakeHead:
			continue
		}

		moves = append(moves, candidate{
			dir:     dir,
			dist:    GetManhattanDistance(next, board.Food),
			roomy:   reachableArea(board, next, board.Snake.Len()) >= board.Snake.Len(),
			forward: dir == heading,
		})
	}

	if len(moves) == 0 {
		// Every neighbour is fatal; hold course.
		return heading, false, nil
	}

	best := -1
	bestScore := math.MaxInt32
	for i, m := range moves {
		score := m.dist
		// Keeping the heading is worth one step of distance.
		if m.forward {
			score--
		}
		if !m.roomy {
			score += board.Grid.Width * board.Grid.Height
		}
		if score < bestScore {
			best, bestScore = i, score
		}
	}

	if moves[best].dir == heading {
		return heading, false, nil
	}
	return moves[best].dir, true, nil
}

// reachableArea flood-fills open cells from start and stops once limit is reached.
func reachableArea(board Board, start Position, limit int) int {
	seen := map[Position]bool{start: true}
	q := []Position{start}
	count := 0

	for len(q) > 0 && count < limit {
		p := q[0]
		q = q[1:]
		count++

		for _, dir := range directions {
			next := p.Step(dir)
			if seen[next] {
				continue
			}
			switch board.CellTypeAt(next) {
			case Empty, Food:
				seen[next] = true
				q = append(q, next)
			}
		}
	}
	return count
}
