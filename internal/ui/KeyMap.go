package ui

import (
	"sync"
	"sync/atomic"

	"github.com/Mshel/termsnake/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("w", "W", "up"),
		key.WithHelp("w/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("s", "S", "down"),
		key.WithHelp("s/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("a", "A", "left"),
		key.WithHelp("a/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("d", "D", "right"),
		key.WithHelp("d/→", "right"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// Direction resolves a key press to a heading.
func (k KeyMap) Direction(msg tea.KeyMsg) (game.Direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return game.Up, true
	case key.Matches(msg, k.Down):
		return game.Down, true
	case key.Matches(msg, k.Left):
		return game.Left, true
	case key.Matches(msg, k.Right):
		return game.Right, true
	}
	return 0, false
}

// inputBuffer keeps only the latest direction between polls. Non-directional
// keys never touch it.
type inputBuffer struct {
	mu      sync.Mutex
	dir     game.Direction
	pending bool
	quit    atomic.Bool
}

func (b *inputBuffer) push(d game.Direction) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dir = d
	b.pending = true
}

func (b *inputBuffer) take() (game.Direction, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.pending {
		return 0, false
	}
	b.pending = false
	return b.dir, true
}

func (b *inputBuffer) requestQuit() {
	b.quit.Store(true)
}

func (b *inputBuffer) quitRequested() bool {
	return b.quit.Load()
}
