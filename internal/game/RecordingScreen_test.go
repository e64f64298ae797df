package game

import "errors"

type drawCall struct {
	X, Y  int
	Glyph Glyph
}

type textCall struct {
	X, Y  int
	Text  string
	Style Style
}

// recordingScreen stands in for a terminal and remembers every call.
type recordingScreen struct {
	width   int
	height  int
	sizeErr error
	drawErr error
	// flushErr is returned once flushOK flushes have succeeded.
	flushErr error
	flushOK  int

	draws   []drawCall
	texts   []textCall
	flushes int
	enters  int
	leaves  int
	title   string

	directions []Direction
	quit       bool
}

func newRecordingScreen(width, height int) *recordingScreen {
	return &recordingScreen{width: width, height: height}
}

func (s *recordingScreen) Size() (int, int, error) {
	return s.width, s.height, s.sizeErr
}

func (s *recordingScreen) EnterGameMode(title string) error {
	s.enters++
	s.title = title
	return nil
}

func (s *recordingScreen) LeaveGameMode() error {
	s.leaves++
	return nil
}

func (s *recordingScreen) DrawCell(x, y int, g Glyph) error {
	if s.drawErr != nil {
		return s.drawErr
	}
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return errors.New("draw outside screen")
	}
	s.draws = append(s.draws, drawCall{X: x, Y: y, Glyph: g})
	return nil
}

func (s *recordingScreen) DrawText(x, y int, text string, style Style) error {
	s.texts = append(s.texts, textCall{X: x, Y: y, Text: text, Style: style})
	return nil
}

func (s *recordingScreen) Flush() error {
	if s.flushErr != nil && s.flushes >= s.flushOK {
		return s.flushErr
	}
	s.flushes++
	return nil
}

func (s *recordingScreen) PollDirection() (Direction, bool) {
	if len(s.directions) == 0 {
		return 0, false
	}
	d := s.directions[0]
	s.directions = s.directions[1:]
	return d, true
}

func (s *recordingScreen) QuitRequested() bool {
	return s.quit
}

func (s *recordingScreen) resetCalls() {
	s.draws = nil
	s.texts = nil
	s.flushes = 0
}
