package ui

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/Mshel/termsnake/internal/game"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

const tcellLeaveTimeout = time.Second

var errNotInGameMode = errors.New("tcell screen not in game mode")

// TcellScreen implements game.Screen by writing cells straight to a tcell screen.
type TcellScreen struct {
	newScreen func() (tcell.Screen, error)
	size      func() (int, int, error)

	screen tcell.Screen
	buffer inputBuffer
	done   chan struct{}
	styles map[game.Style]tcell.Style
}

type TcellOption func(*TcellScreen)

// WithTcellScreen uses scr instead of the process terminal, e.g. a simulation screen.
func WithTcellScreen(scr tcell.Screen) TcellOption {
	return func(s *TcellScreen) {
		s.newScreen = func() (tcell.Screen, error) { return scr, nil }
	}
}

func WithTcellSize(size func() (int, int, error)) TcellOption {
	return func(s *TcellScreen) { s.size = size }
}

func NewTcellScreen(opts ...TcellOption) *TcellScreen {
	s := &TcellScreen{
		newScreen: tcell.NewScreen,
		size:      stdoutSize,
		styles:    make(map[game.Style]tcell.Style),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TcellScreen) Size() (int, int, error) {
	return s.size()
}

func (s *TcellScreen) EnterGameMode(title string) error {
	if s.screen != nil {
		return errors.New("tcell screen already in game mode")
	}

	scr, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("create tcell screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("init tcell screen: %w", err)
	}

	scr.SetTitle(title)
	scr.HideCursor()
	scr.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	scr.Clear()

	s.screen = scr
	s.done = make(chan struct{})
	go s.pollEvents(scr, s.done)

	log.Debug("Tcell screen initialized", "title", title)
	return nil
}

func (s *TcellScreen) LeaveGameMode() error {
	if s.screen == nil {
		return nil
	}

	s.screen.Fini()
	select {
	case <-s.done:
	case <-time.After(tcellLeaveTimeout):
		log.Warn("Tcell event pump did not stop", "timeout", tcellLeaveTimeout)
	}
	s.screen = nil
	return nil
}

func (s *TcellScreen) DrawCell(x, y int, g game.Glyph) error {
	if s.screen == nil {
		return errNotInGameMode
	}
	s.screen.SetContent(x, y, g.Symbol, nil, s.style(g.Style))
	return nil
}

func (s *TcellScreen) DrawText(x, y int, text string, style game.Style) error {
	if s.screen == nil {
		return errNotInGameMode
	}
	st := s.style(style)
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, st)
	}
	return nil
}

func (s *TcellScreen) Flush() error {
	if s.screen == nil {
		return errNotInGameMode
	}
	s.screen.Show()
	return nil
}

func (s *TcellScreen) PollDirection() (game.Direction, bool) {
	return s.buffer.take()
}

func (s *TcellScreen) QuitRequested() bool {
	return s.buffer.quitRequested()
}

// pollEvents pumps key events into the input buffer until the screen is finalized.
func (s *TcellScreen) pollEvents(scr tcell.Screen, done chan struct{}) {
	defer close(done)
	for {
		ev := scr.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			s.handleKey(key)
		}
	}
}

func (s *TcellScreen) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.buffer.requestQuit()
	case tcell.KeyUp:
		s.buffer.push(game.Up)
	case tcell.KeyDown:
		s.buffer.push(game.Down)
	case tcell.KeyLeft:
		s.buffer.push(game.Left)
	case tcell.KeyRight:
		s.buffer.push(game.Right)
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			s.buffer.push(game.Up)
		case 's':
			s.buffer.push(game.Down)
		case 'a':
			s.buffer.push(game.Left)
		case 'd':
			s.buffer.push(game.Right)
		}
	}
}

func (s *TcellScreen) style(st game.Style) tcell.Style {
	if style, ok := s.styles[st]; ok {
		return style
	}
	style := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(st.Foreground)).
		Background(tcell.PaletteColor(st.Background)).
		Bold(st.Bold).
		Blink(st.Blink)
	s.styles[st] = style
	return style
}
