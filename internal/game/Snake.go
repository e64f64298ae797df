package game

// Snake holds the head, the body ordered from neck to tail, and the heading.
// It carries no game rules; GameManager mutates it.
type Snake struct {
	Heading Direction
	Head    Position
	Body    []Position
}

func NewSnake(head Position, body []Position, heading Direction) *Snake {
	return &Snake{
		Heading: heading,
		Head:    head,
		Body:    append([]Position(nil), body...),
	}
}

// Len counts the head and every body segment.
func (s *Snake) Len() int {
	return 1 + len(s.Body)
}

func (s *Snake) pushFront(p Position) {
	s.Body = append(s.Body, Position{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = p
}

func (s *Snake) popBack() (Position, bool) {
	if len(s.Body) == 0 {
		return Position{}, false
	}
	tail := s.Body[len(s.Body)-1]
	s.Body = s.Body[:len(s.Body)-1]
	return tail, true
}
