package game

import "fmt"

// Renderer pushes grid cells to the screen and clears their dirty flags.
type Renderer struct {
	grid   *Grid
	screen Screen
}

func NewRenderer(grid *Grid, screen Screen) *Renderer {
	return &Renderer{grid: grid, screen: screen}
}

// RenderAll draws every cell regardless of its dirty flag. Used for the first frame.
func (r *Renderer) RenderAll() error {
	if _, err := r.render(func(*Cell) bool { return true }); err != nil {
		return err
	}
	return r.flush()
}

// RenderDirty draws only the cells changed since the last pass and returns how many it drew.
func (r *Renderer) RenderDirty() (int, error) {
	drawn, err := r.render(func(c *Cell) bool { return c.Dirty })
	if err != nil {
		return drawn, err
	}
	return drawn, r.flush()
}

func (r *Renderer) render(include func(*Cell) bool) (int, error) {
	drawn := 0
	for row := range r.grid.Cells {
		for col := range r.grid.Cells[row] {
			cell := &r.grid.Cells[row][col]
			if !include(cell) {
				continue
			}
			if err := r.screen.DrawCell(cell.X, cell.Y, GlyphFor(cell.Type)); err != nil {
				return drawn, fmt.Errorf("render cell (%d,%d): %w", cell.X, cell.Y, err)
			}
			cell.Dirty = false
			drawn++
		}
	}
	return drawn, nil
}

func (r *Renderer) flush() error {
	if err := r.screen.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
