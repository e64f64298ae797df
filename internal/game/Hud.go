package game

import (
	"fmt"
	"time"
	"unicode/utf8"
)

var (
	titleStyle    = Style{Foreground: ColorGreen, Background: ColorBlack, Bold: true}
	hudLabelStyle = Style{Foreground: ColorWhite, Background: ColorBlue}
	hudScoreStyle = Style{Foreground: ColorGreen, Background: ColorWhite, Bold: true}
	hudSpeedStyle = Style{Foreground: ColorRed, Background: ColorWhite}
	hudHintStyle  = Style{Foreground: ColorGrey, Background: ColorBlue}
)

const (
	hudGap          = 4
	hudLeftMargin   = 4
	scoreFieldWidth = 7
)

// Hud writes the title onto the top wall row and the status line onto the bottom one.
type Hud struct {
	screen Screen
	width  int
	height int
	title  string
	tick   time.Duration
}

func NewHud(screen Screen, width, height int, title string, tick time.Duration) *Hud {
	return &Hud{screen: screen, width: width, height: height, title: title, tick: tick}
}

func (h *Hud) DrawTitle() error {
	x := (h.width - utf8.RuneCountInString(h.title)) / 2
	return h.screen.DrawText(max(x, 0), 0, h.title, titleStyle)
}

// DrawStatus renders "Score: N    Speed: Nms    Esc to quit" along the bottom wall.
func (h *Hud) DrawStatus(score int) error {
	row := h.height - 1
	x := hudLeftMargin

	segments := []struct {
		text  string
		style Style
		gap   int
	}{
		{"Score: ", hudLabelStyle, 0},
		{centered(fmt.Sprint(score), scoreFieldWidth), hudScoreStyle, hudGap},
		{"Speed: ", hudLabelStyle, 0},
		{fmt.Sprintf("%dms", h.tick.Milliseconds()), hudSpeedStyle, hudGap},
		{"Esc to quit", hudHintStyle, 0},
	}
	for _, s := range segments {
		if err := h.screen.DrawText(x, row, s.text, s.style); err != nil {
			return fmt.Errorf("draw status: %w", err)
		}
		x += utf8.RuneCountInString(s.text) + s.gap
	}
	return nil
}

func centered(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return fmt.Sprintf("%*s%s%*s", left, "", s, pad-left, "")
}
