package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Mshel/termsnake/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// TeaScreen implements game.Screen on a bubbletea program. The game draws into
// a back buffer; Flush publishes it to the program, which renders it as View.
type TeaScreen struct {
	Keys KeyMap

	input  io.Reader
	output io.Writer
	size   func() (int, int, error)

	mu     sync.Mutex
	width  int
	height int
	back   [][]game.Glyph
	front  [][]game.Glyph
	styles map[game.Style]lipgloss.Style
	title  string

	buffer  inputBuffer
	program *tea.Program
	group   *errgroup.Group
	done    chan struct{}
	exitErr error
}

type TeaOption func(*TeaScreen)

func WithTeaIO(in io.Reader, out io.Writer) TeaOption {
	return func(s *TeaScreen) {
		s.input = in
		s.output = out
	}
}

func WithTeaSize(size func() (int, int, error)) TeaOption {
	return func(s *TeaScreen) { s.size = size }
}

func NewTeaScreen(opts ...TeaOption) *TeaScreen {
	s := &TeaScreen{
		Keys:   DefaultKeyMap,
		input:  os.Stdin,
		output: os.Stdout,
		size:   stdoutSize,
		styles: make(map[game.Style]lipgloss.Style),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TeaScreen) Size() (int, int, error) {
	width, height, err := s.size()
	if err != nil {
		return 0, 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if width != s.width || height != s.height || s.back == nil {
		s.width, s.height = width, height
		s.back = newFrame(width, height)
		s.front = newFrame(width, height)
	}
	return width, height, nil
}

func (s *TeaScreen) EnterGameMode(title string) error {
	if s.program != nil {
		return errors.New("tea screen already in game mode")
	}

	s.mu.Lock()
	sized := s.back != nil
	s.title = title
	s.mu.Unlock()
	if !sized {
		if _, _, err := s.Size(); err != nil {
			return err
		}
	}

	program := tea.NewProgram(
		GameViewModel{screen: s},
		tea.WithAltScreen(),
		tea.WithInput(s.input),
		tea.WithOutput(s.output),
		tea.WithoutSignalHandler(),
	)
	done := make(chan struct{})
	s.program = program
	s.done = done
	s.group = new(errgroup.Group)
	s.group.Go(func() error {
		_, err := program.Run()
		s.mu.Lock()
		s.exitErr = err
		s.mu.Unlock()
		close(done)
		return err
	})

	log.Debug("Tea program started", "title", title)
	return nil
}

func (s *TeaScreen) LeaveGameMode() error {
	if s.program == nil {
		return nil
	}

	s.program.Quit()
	err := s.group.Wait()
	s.program, s.group, s.done = nil, nil, nil

	if err != nil {
		return fmt.Errorf("tea program: %w", err)
	}
	log.Debug("Tea program stopped")
	return nil
}

func (s *TeaScreen) DrawCell(x, y int, g game.Glyph) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inBounds(x, y) {
		return fmt.Errorf("draw cell (%d,%d) outside %dx%d screen", x, y, s.width, s.height)
	}
	s.back[y][x] = g
	return nil
}

// DrawText writes one rune per cell starting at (x, y), clipped at the right edge.
func (s *TeaScreen) DrawText(x, y int, text string, style game.Style) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inBounds(x, y) {
		return fmt.Errorf("draw text at (%d,%d) outside %dx%d screen", x, y, s.width, s.height)
	}
	for i, r := range []rune(text) {
		if x+i >= s.width {
			break
		}
		s.back[y][x+i] = game.Glyph{Symbol: r, Style: style}
	}
	return nil
}

func (s *TeaScreen) Flush() error {
	s.mu.Lock()
	for y := range s.back {
		copy(s.front[y], s.back[y])
	}
	program, done := s.program, s.done
	s.mu.Unlock()

	if program == nil {
		return nil
	}
	if err := s.exited(done); err != nil {
		return err
	}
	program.Send(frameMsg{})
	return nil
}

// exited reports why the program stopped, or nil while it is still running.
func (s *TeaScreen) exited(done chan struct{}) error {
	select {
	case <-done:
	default:
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exitErr != nil {
		return fmt.Errorf("tea program: %w", s.exitErr)
	}
	return errors.New("tea program exited")
}

func (s *TeaScreen) PollDirection() (game.Direction, bool) {
	return s.buffer.take()
}

func (s *TeaScreen) QuitRequested() bool {
	return s.buffer.quitRequested()
}

func (s *TeaScreen) handleKey(msg tea.KeyMsg) {
	if key.Matches(msg, s.Keys.Quit) {
		s.buffer.requestQuit()
		return
	}
	if dir, ok := s.Keys.Direction(msg); ok {
		s.buffer.push(dir)
	}
}

func (s *TeaScreen) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

func newFrame(width, height int) [][]game.Glyph {
	frame := make([][]game.Glyph, height)
	for y := range frame {
		frame[y] = make([]game.Glyph, width)
	}
	return frame
}
