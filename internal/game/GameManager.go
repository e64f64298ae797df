package game

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Listener hears about score and crash events. Calls happen on the tick loop.
type Listener interface {
	FoodEaten(score int)
	Crashed(reason error)
}

type noopListener struct{}

func (noopListener) FoodEaten(int) {}
func (noopListener) Crashed(error) {}

// GameManager owns the grid, the snake and the score for one session and
// advances them one tick at a time.
type GameManager struct {
	Config Config
	Grid   *Grid
	Snake  *Snake
	Score  int
	Food   Position

	screen   Screen
	renderer *Renderer
	hud      *Hud
	spawner  *FoodSpawner
	strategy Strategy
	listener Listener
}

type Option func(*GameManager)

// WithStrategy steers with s instead of the keyboard. Quit is still read from the screen.
func WithStrategy(s Strategy) Option {
	return func(gm *GameManager) { gm.strategy = s }
}

func WithListener(l Listener) Option {
	return func(gm *GameManager) { gm.listener = l }
}

// NewGameManager sizes the grid from the screen and builds the opening scene:
// border walls, the starting snake and one food item.
func NewGameManager(screen Screen, cfg Config, opts ...Option) (*GameManager, error) {
	width, height, err := screen.Size()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalSize, err)
	}
	if width < MinGridWidth || height < MinGridHeight {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrWindowTooSmall, width, height, MinGridWidth, MinGridHeight)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	grid := NewGrid(width, height)
	gm := &GameManager{
		Config:   cfg,
		Grid:     grid,
		Snake:    NewSnake(InitialHead, InitialBody, InitialHeading),
		screen:   screen,
		renderer: NewRenderer(grid, screen),
		hud:      NewHud(screen, width, height, cfg.Title, cfg.TickInterval),
		spawner:  NewFoodSpawner(cfg.Seed),
		listener: noopListener{},
	}
	for _, opt := range opts {
		opt(gm)
	}

	if err := gm.buildScene(); err != nil {
		return nil, err
	}
	return gm, nil
}

func (gm *GameManager) buildScene() error {
	gm.Grid.buildWalls()

	gm.Grid.CellAt(gm.Snake.Head).Type = SnakeHead
	for _, p := range gm.Snake.Body {
		gm.Grid.CellAt(p).Type = SnakeBody
	}

	food, err := gm.spawner.Spawn(gm.Grid)
	if err != nil {
		return err
	}
	gm.Food = food
	return nil
}

// Run plays the session until a quit, a fatal outcome or ctx cancellation.
// The screen leaves game mode exactly once on every path out of Run.
func (gm *GameManager) Run(ctx context.Context) (err error) {
	if err := gm.screen.EnterGameMode(gm.Config.Title); err != nil {
		return fmt.Errorf("enter game mode: %w", err)
	}
	defer func() {
		if leaveErr := gm.screen.LeaveGameMode(); leaveErr != nil {
			log.Error("Failed to restore terminal", "error", leaveErr)
			if err == nil {
				err = fmt.Errorf("leave game mode: %w", leaveErr)
			}
		}
		log.Info("Game mode left", "score", gm.Score)
	}()

	log.Info("Session started", "width", gm.Grid.Width, "height", gm.Grid.Height, "tick", gm.Config.TickInterval)

	if err := gm.drawFirstFrame(); err != nil {
		return err
	}

	if !sleep(ctx, gm.Config.StartDelay) {
		return nil
	}

	ticker := time.NewTicker(gm.Config.TickInterval)
	defer ticker.Stop()

	for {
		if gm.screen.QuitRequested() {
			log.Info("Quit requested", "score", gm.Score)
			return nil
		}

		if err := gm.Step(); err != nil {
			if IsCollision(err) {
				log.Info("Snake crashed", "reason", err, "score", gm.Score)
				gm.listener.Crashed(err)
				sleep(ctx, gm.Config.DeathPause)
			} else {
				log.Error("Session failed", "error", err, "score", gm.Score)
			}
			return err
		}

		select {
		case <-ctx.Done():
			log.Info("Session cancelled", "score", gm.Score)
			return nil
		case <-ticker.C:
		}
	}
}

func (gm *GameManager) drawFirstFrame() error {
	if err := gm.renderer.RenderAll(); err != nil {
		return err
	}
	if err := gm.hud.DrawTitle(); err != nil {
		return fmt.Errorf("draw title: %w", err)
	}
	if err := gm.hud.DrawStatus(gm.Score); err != nil {
		return err
	}
	if err := gm.screen.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Step is one full tick: steer, simulate, redraw what changed.
func (gm *GameManager) Step() error {
	if err := gm.steer(); err != nil {
		return err
	}
	if err := gm.Tick(); err != nil {
		return err
	}
	_, err := gm.renderer.RenderDirty()
	return err
}

func (gm *GameManager) steer() error {
	if gm.strategy == nil {
		if dir, ok := gm.screen.PollDirection(); ok {
			gm.Turn(dir)
		}
		return nil
	}

	dir, ok, err := gm.strategy.NextDirection(Board{Grid: gm.Grid, Snake: gm.Snake, Food: gm.Food})
	if err != nil {
		return fmt.Errorf("autopilot: %w", err)
	}
	if ok {
		gm.Turn(dir)
	}
	return nil
}

// Turn accepts only 90° changes of heading. Reversals and repeats are ignored.
func (gm *GameManager) Turn(dir Direction) bool {
	if !isQuarterTurn(gm.Snake.Heading, dir) {
		return false
	}
	gm.Snake.Heading = dir
	return true
}

// CollisionDetection looks one step ahead without mutating anything. A step
// off the grid reports Wall at the origin.
func (gm *GameManager) CollisionDetection() (CellType, Position) {
	next := gm.Snake.Head.Step(gm.Snake.Heading)
	if !gm.Grid.InBounds(next) {
		return Wall, Position{}
	}
	return gm.Grid.TypeAt(next), next
}

// Tick applies the outcome of the next move to the snake and the grid.
func (gm *GameManager) Tick() error {
	kind, next := gm.CollisionDetection()

	switch kind {
	case Wall:
		return ErrHitWall
	case SnakeHead:
		return nil
	case SnakeBody:
		return ErrSelfCollision
	case Food:
		return gm.eat(next)
	case Empty:
		gm.move(next)
	}
	return nil
}

func (gm *GameManager) advance(next Position) {
	prev := gm.Snake.Head
	gm.Snake.pushFront(prev)
	gm.Grid.SetCellType(prev, SnakeBody)
	gm.Snake.Head = next
	gm.Grid.SetCellType(next, SnakeHead)
}

func (gm *GameManager) move(next Position) {
	gm.advance(next)
	// A snake without body keeps no tail to drop.
	if tail, ok := gm.Snake.popBack(); ok {
		gm.Grid.SetCellType(tail, Empty)
	}
}

// eat places the replacement food before the head lands, so the food being
// eaten is never a candidate.
func (gm *GameManager) eat(next Position) error {
	food, err := gm.spawner.Spawn(gm.Grid)
	if err != nil {
		return err
	}
	log.Debug("Food spawned", "x", food.X, "y", food.Y)
	gm.Food = food

	gm.advance(next)
	gm.Score++

	if err := gm.hud.DrawStatus(gm.Score); err != nil {
		return err
	}
	gm.listener.FoodEaten(gm.Score)
	log.Info("Food eaten", "score", gm.Score, "length", gm.Snake.Len())
	return nil
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
