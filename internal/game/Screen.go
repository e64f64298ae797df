package game

// Palette indices shared by every backend.
const (
	ColorBlack  = 0
	ColorRed    = 1
	ColorGreen  = 2
	ColorYellow = 3
	ColorBlue   = 4
	ColorWhite  = 7
	ColorGrey   = 8
)

type Style struct {
	Foreground int
	Background int
	Bold       bool
	Blink      bool
}

type Glyph struct {
	Symbol rune
	Style  Style
}

// CellGlyphs maps each cell type to its one stable visual.
var CellGlyphs = map[CellType]Glyph{
	Wall:      {Symbol: '█', Style: Style{Foreground: ColorBlue, Background: ColorBlack}},
	SnakeHead: {Symbol: '#', Style: Style{Foreground: ColorGreen, Background: ColorBlack}},
	SnakeBody: {Symbol: '#', Style: Style{Foreground: ColorYellow, Background: ColorBlack}},
	Food:      {Symbol: '$', Style: Style{Foreground: ColorRed, Background: ColorBlack, Blink: true}},
	Empty:     {Symbol: '█', Style: Style{Foreground: ColorBlack, Background: ColorBlack}},
}

func GlyphFor(t CellType) Glyph {
	return CellGlyphs[t]
}

// Screen is the terminal capability the game drives. Implementations own the
// output stream and the key buffer.
type Screen interface {
	// Size reports the terminal dimensions in cells.
	Size() (width, height int, err error)

	// EnterGameMode switches to raw input, the alternate buffer and a hidden
	// cursor. LeaveGameMode restores the terminal.
	EnterGameMode(title string) error
	LeaveGameMode() error

	DrawCell(x, y int, g Glyph) error
	DrawText(x, y int, text string, style Style) error
	Flush() error

	// PollDirection returns the latest directional key seen since the last
	// call. It never blocks.
	PollDirection() (Direction, bool)
	QuitRequested() bool
}
