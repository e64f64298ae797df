package game

import "errors"

// Fatal-session outcomes. Each ends the tick loop.
var (
	ErrHitWall        = errors.New("hit wall")
	ErrSelfCollision  = errors.New("self-collision")
	ErrNoSpaceForFood = errors.New("no space for food")
)

// Fatal-construction outcomes, returned before the backend enters game mode.
var (
	ErrWindowTooSmall = errors.New("window too small")
	ErrTerminalSize   = errors.New("cannot query terminal size")
)

// IsCollision reports whether err ends the session because the snake crashed.
func IsCollision(err error) bool {
	return errors.Is(err, ErrHitWall) || errors.Is(err, ErrSelfCollision)
}
