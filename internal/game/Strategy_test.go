package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStrategy(t *testing.T) {
	tests := []struct {
		name   string
		food   Position
		walls  []Position
		want   Direction
		wantOK bool
	}{
		{"keeps heading toward food", Position{X: 30, Y: 7}, nil, Right, false},
		{"turns toward food", Position{X: 9, Y: 2}, nil, Up, true},
		{"avoids wall ahead", Position{X: 30, Y: 7}, []Position{{X: 10, Y: 7}}, Up, true},
		{"trapped keeps heading", Position{X: 30, Y: 7}, []Position{{X: 9, Y: 6}, {X: 10, Y: 7}, {X: 9, Y: 8}}, Right, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gm, _ := newTestGame(t)
			moveFood(gm, tc.food)
			for _, w := range tc.walls {
				gm.Grid.CellAt(w).Type = Wall
			}

			s := &DefaultStrategy{}
			dir, ok, err := s.NextDirection(Board{Grid: gm.Grid, Snake: gm.Snake, Food: gm.Food})
			if err != nil {
				t.Fatalf("NextDirection: %v", err)
			}
			if dir != tc.want || ok != tc.wantOK {
				t.Errorf("got (%v, %v), want (%v, %v)", dir, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestDefaultStrategyPrefersRoom(t *testing.T) {
	gm, _ := newTestGame(t)
	moveFood(gm, Position{X: 9, Y: 2})
	// Seal column 9 above the head into a one cell pocket.
	for x := 1; x < TestGridWidth-1; x++ {
		gm.Grid.CellAt(Position{X: x, Y: 5}).Type = Wall
	}
	gm.Grid.CellAt(Position{X: 8, Y: 6}).Type = Wall
	gm.Grid.CellAt(Position{X: 10, Y: 6}).Type = Wall

	s := &DefaultStrategy{}
	dir, ok, err := s.NextDirection(Board{Grid: gm.Grid, Snake: gm.Snake, Food: gm.Food})
	if err != nil {
		t.Fatalf("NextDirection: %v", err)
	}
	if ok && dir == Up {
		t.Errorf("steered into a dead end")
	}
}

func TestLuaStrategy(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    Direction
		wantOK  bool
		wantErr bool
	}{
		{
			name:   "returns a heading",
			script: `function next_direction(s) if s.head.y > s.food.y then return "up" end return nil end`,
			want:   Up, wantOK: true,
		},
		{
			name:   "nil keeps heading",
			script: `function next_direction(s) return nil end`,
		},
		{
			name:   "reads cells",
			script: `function next_direction(s) if cell_at(s.head.x + 1, s.head.y) == "wall" then return "down" end return "up" end`,
			want:   Down, wantOK: true,
		},
		{
			name:   "sees heading and size",
			script: `function next_direction(s) if s.heading == "right" and s.width == 60 and s.height == 20 and s.length == 8 then return "down" end end`,
			want:   Down, wantOK: true,
		},
		{
			name:    "unknown direction",
			script:  `function next_direction(s) return "sideways" end`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			script:  `function next_direction(s) return 4 end`,
			wantErr: true,
		},
		{
			name:    "runtime error",
			script:  `function next_direction(s) return s.missing.x end`,
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gm, _ := newTestGame(t)
			moveFood(gm, Position{X: 50, Y: 3})
			gm.Grid.CellAt(Position{X: 10, Y: 7}).Type = Wall

			s, err := NewLuaStrategy(tc.name, tc.script)
			if err != nil {
				t.Fatalf("NewLuaStrategy: %v", err)
			}
			defer s.Close()

			dir, ok, err := s.NextDirection(Board{Grid: gm.Grid, Snake: gm.Snake, Food: gm.Food})
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NextDirection: %v", err)
			}
			if ok != tc.wantOK || (ok && dir != tc.want) {
				t.Errorf("got (%v, %v), want (%v, %v)", dir, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestLuaStrategyRejectsBadScripts(t *testing.T) {
	if _, err := NewLuaStrategy("syntax", `function next_direction(`); err == nil {
		t.Error("syntax error accepted")
	}
	if _, err := NewLuaStrategy("missing", `function other() end`); err == nil {
		t.Error("script without next_direction accepted")
	}
}

func TestLoadLuaStrategy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pilot.lua")
	if err := os.WriteFile(path, []byte(`function next_direction(s) return "down" end`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadLuaStrategy(path)
	if err != nil {
		t.Fatalf("LoadLuaStrategy: %v", err)
	}
	defer s.Close()
	if s.StrategyName != path {
		t.Errorf("name = %q", s.StrategyName)
	}

	if _, err := LoadLuaStrategy(filepath.Join(t.TempDir(), "absent.lua")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestStepUsesStrategyOverKeyboard(t *testing.T) {
	s, err := NewLuaStrategy("up", `function next_direction(s) return "up" end`)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	gm, screen := newTestGame(t, WithStrategy(s))
	moveFood(gm, Position{X: 50, Y: 15})
	screen.directions = []Direction{Down}

	if err := gm.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if gm.Snake.Heading != Up {
		t.Errorf("heading = %v, want up", gm.Snake.Heading)
	}
	if len(screen.directions) != 1 {
		t.Errorf("keyboard was polled while the autopilot steered")
	}
}

func TestStepFailsOnStrategyError(t *testing.T) {
	s, err := NewLuaStrategy("bad", `function next_direction(s) return "sideways" end`)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	gm, _ := newTestGame(t, WithStrategy(s))
	if err := gm.Step(); err == nil {
		t.Fatal("expected autopilot error")
	}
}
