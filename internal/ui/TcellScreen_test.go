package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mshel/termsnake/internal/game"
	"github.com/gdamore/tcell/v2"
)

func newSimulatedTcell(t *testing.T) (*TcellScreen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewTcellScreen(
		WithTcellScreen(sim),
		WithTcellSize(func() (int, int, error) { return 60, 20, nil }),
	)
	if err := s.EnterGameMode("test"); err != nil {
		t.Fatalf("EnterGameMode: %v", err)
	}
	sim.SetSize(60, 20)
	t.Cleanup(func() { s.LeaveGameMode() })
	return s, sim
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestTcellScreenDrawsCells(t *testing.T) {
	s, sim := newSimulatedTcell(t)

	if err := s.DrawCell(3, 2, game.GlyphFor(game.Food)); err != nil {
		t.Fatalf("DrawCell: %v", err)
	}
	if err := s.DrawText(10, 19, "Score", game.Style{Foreground: game.ColorWhite, Background: game.ColorBlue}); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	cells, width, _ := sim.GetContents()
	if got := cells[2*width+3].Runes; len(got) == 0 || got[0] != '$' {
		t.Errorf("cell (3,2) = %q, want $", got)
	}
	var text []rune
	for x := 10; x < 15; x++ {
		text = append(text, cells[19*width+x].Runes...)
	}
	if string(text) != "Score" {
		t.Errorf("status text = %q", string(text))
	}
}

func TestTcellScreenKeys(t *testing.T) {
	s, sim := newSimulatedTcell(t)

	sim.InjectKey(tcell.KeyRune, 'W', tcell.ModNone)
	waitFor(t, "up", func() bool {
		dir, ok := s.PollDirection()
		return ok && dir == game.Up
	})

	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	waitFor(t, "quit", s.QuitRequested)

	dir, ok := s.PollDirection()
	if !ok || dir != game.Left {
		t.Errorf("PollDirection = %v, %v, want left", dir, ok)
	}
}

func TestTcellScreenOutsideGameMode(t *testing.T) {
	s := NewTcellScreen(WithTcellScreen(tcell.NewSimulationScreen("UTF-8")))

	if err := s.DrawCell(0, 0, game.GlyphFor(game.Wall)); !errors.Is(err, errNotInGameMode) {
		t.Errorf("DrawCell err = %v", err)
	}
	if err := s.Flush(); !errors.Is(err, errNotInGameMode) {
		t.Errorf("Flush err = %v", err)
	}
	if err := s.LeaveGameMode(); err != nil {
		t.Errorf("LeaveGameMode err = %v", err)
	}
}

func TestTerminalSizeRejectsNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, _, err := TerminalSize(f); err == nil {
		t.Error("regular file reported a terminal size")
	}
}
