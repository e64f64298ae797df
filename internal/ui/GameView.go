package ui

import (
	"strconv"
	"strings"

	"github.com/Mshel/termsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameMsg tells the program a new frame was flushed.
type frameMsg struct{}

// GameViewModel is the bubbletea side of TeaScreen. It forwards keys into the
// input buffer and renders the last flushed frame.
type GameViewModel struct {
	screen *TeaScreen
}

func (m GameViewModel) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.screen.title), tea.HideCursor)
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.screen.handleKey(msg)
	case frameMsg:
		// View picks up the new front buffer.
	}
	return m, nil
}

func (m GameViewModel) View() string {
	return m.screen.renderFrame()
}

// renderFrame joins runs of equally styled cells so each run is styled once.
func (s *TeaScreen) renderFrame() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sb strings.Builder
	var run strings.Builder
	for y, row := range s.front {
		if y > 0 {
			sb.WriteString("\n")
		}
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].Style == row[start].Style {
				end++
			}

			run.Reset()
			for _, g := range row[start:end] {
				if g.Symbol == 0 {
					run.WriteRune(' ')
				} else {
					run.WriteRune(g.Symbol)
				}
			}
			sb.WriteString(s.lipglossStyle(row[start].Style).Render(run.String()))
			start = end
		}
	}
	return sb.String()
}

func (s *TeaScreen) lipglossStyle(st game.Style) lipgloss.Style {
	if style, ok := s.styles[st]; ok {
		return style
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(strconv.Itoa(st.Foreground))).
		Background(lipgloss.Color(strconv.Itoa(st.Background))).
		Bold(st.Bold).
		Blink(st.Blink)
	s.styles[st] = style
	return style
}
