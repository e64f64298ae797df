package game

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

const luaEntryPoint = "next_direction"

// LuaStrategy steers with a script that defines
//
//	function next_direction(snake) ... end
//
// where snake carries head, heading, food, width and height, and the global
// cell_at(x, y) names the cell type at a coordinate. Returning nil keeps the heading.
type LuaStrategy struct {
	StrategyName string

	state *lua.LState
	fn    lua.LValue
	board Board
}

func NewLuaStrategy(name, definition string) (*LuaStrategy, error) {
	s := &LuaStrategy{StrategyName: name, state: lua.NewState()}
	s.state.SetGlobal("cell_at", s.state.NewFunction(s.cellAt))

	if err := s.state.DoString(definition); err != nil {
		s.state.Close()
		return nil, fmt.Errorf("could not parse lua strategy %s: %w", name, err)
	}

	s.fn = s.state.GetGlobal(luaEntryPoint)
	if s.fn.Type() != lua.LTFunction {
		s.state.Close()
		return nil, fmt.Errorf("lua strategy %s does not define %s", name, luaEntryPoint)
	}

	return s, nil
}

// LoadLuaStrategy reads a strategy script from disk.
func LoadLuaStrategy(path string) (*LuaStrategy, error) {
	definition, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lua strategy: %w", err)
	}
	return NewLuaStrategy(path, string(definition))
}

func (s *LuaStrategy) NextDirection(board Board) (Direction, bool, error) {
	s.board = board

	if err := s.state.CallByParam(lua.P{
		Fn:      s.fn,
		NRet:    1,
		Protect: true,
	}, s.snakeTable(board)); err != nil {
		return 0, false, fmt.Errorf("could not execute lua strategy %s: %w", s.StrategyName, err)
	}

	ret := s.state.Get(-1)
	s.state.Pop(1)

	switch ret.Type() {
	case lua.LTNil:
		return 0, false, nil
	case lua.LTString:
		dir, ok := ParseDirection(lua.LVAsString(ret))
		if !ok {
			return 0, false, fmt.Errorf("lua strategy %s returned unknown direction %q", s.StrategyName, lua.LVAsString(ret))
		}
		return dir, true, nil
	}
	return 0, false, errors.New("lua strategy " + s.StrategyName + " returned " + ret.Type().String() + ", expected string or nil")
}

func (s *LuaStrategy) Close() {
	s.state.Close()
}

func (s *LuaStrategy) snakeTable(board Board) *lua.LTable {
	tbl := s.state.NewTable()
	s.state.SetField(tbl, "head", s.positionTable(board.Snake.Head))
	s.state.SetField(tbl, "food", s.positionTable(board.Food))
	s.state.SetField(tbl, "heading", lua.LString(board.Snake.Heading.String()))
	s.state.SetField(tbl, "length", lua.LNumber(board.Snake.Len()))
	s.state.SetField(tbl, "width", lua.LNumber(board.Grid.Width))
	s.state.SetField(tbl, "height", lua.LNumber(board.Grid.Height))
	return tbl
}

func (s *LuaStrategy) positionTable(p Position) *lua.LTable {
	tbl := s.state.NewTable()
	s.state.SetField(tbl, "x", lua.LNumber(p.X))
	s.state.SetField(tbl, "y", lua.LNumber(p.Y))
	return tbl
}

func (s *LuaStrategy) cellAt(L *lua.LState) int {
	x := L.CheckInt(1)
	y := L.CheckInt(2)
	if s.board.Grid == nil {
		L.Push(lua.LString(Wall.String()))
		return 1
	}
	L.Push(lua.LString(s.board.CellTypeAt(Position{X: x, Y: y}).String()))
	return 1
}
