package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/okigiri/fifteen/internal/session"
)

// Tiles sitting at their solved position render light, displaced tiles
// dark, the hole invisible.
var (
	tileHomeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("255")).
			Foreground(lipgloss.Color("236")).
			Padding(0, 1)

	tileAwayStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	holeStyle = lipgloss.NewStyle().Padding(0, 1)

	timerStyle = lipgloss.NewStyle().Bold(true)

	solvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	historyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	devStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			MarginLeft(4)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// View renders the timer, board, history, and optional dev overlay.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var left strings.Builder
	left.WriteString(timerStyle.Render(formatClock(m.sess)))
	left.WriteString("\n\n")
	left.WriteString(m.renderBoard())
	left.WriteString("\n")

	if history := m.sess.History(); len(history) > 0 {
		left.WriteString(historyStyle.Render(strings.Join(history, "")))
		left.WriteString("\n")
	}

	if m.sess.Phase() == session.Solved {
		left.WriteString(solvedStyle.Render("solved! space for a new puzzle"))
		left.WriteString("\n")
	}

	left.WriteString(helpStyle.Render("space reset · arrows slide · D dev · q quit"))

	content := left.String()
	if m.devMode {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, devStyle.Render(m.renderDevPanel()))
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderBoard draws the tile grid.
func (m Model) renderBoard() string {
	shape := m.sess.Shape()
	cells := m.sess.Cells()
	labelWidth := len(strconv.Itoa(shape.Area() - 1))

	rows := make([]string, 0, shape.Height)
	for y := 0; y < shape.Height; y++ {
		tiles := make([]string, 0, shape.Width)
		for x := 0; x < shape.Width; x++ {
			idx := y*shape.Width + x
			label := cells[idx]

			switch {
			case label == 0:
				tiles = append(tiles, holeStyle.Render(strings.Repeat(" ", labelWidth)))
			case label == idx+1:
				tiles = append(tiles, tileHomeStyle.Render(fmt.Sprintf("%*d", labelWidth, label)))
			default:
				tiles = append(tiles, tileAwayStyle.Render(fmt.Sprintf("%*d", labelWidth, label)))
			}
		}
		rows = append(rows, strings.Join(tiles, " "))
	}
	return strings.Join(rows, "\n")
}

// renderDevPanel shows the seed and raw session state.
func (m Model) renderDevPanel() string {
	var sb strings.Builder
	for _, line := range chunkString(m.sess.Seed().String(), 11) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "is_solved(): %v\n", m.sess.IsSolved())
	fmt.Fprintf(&sb, "game_state: %s\n", m.sess.State())
	return sb.String()
}

// formatClock renders the solve time as "SS.mmm", zero when not solving.
func formatClock(s *session.Session) string {
	elapsed, ok := s.SolveTime()
	if !ok {
		elapsed = 0
	}
	return fmt.Sprintf("%02d.%03d",
		int(elapsed/time.Second),
		int(elapsed%time.Second)/int(time.Millisecond))
}

// chunkString splits s into pieces of at most n characters.
func chunkString(s string, n int) []string {
	var chunks []string
	for len(s) > n {
		chunks = append(chunks, s[:n])
		s = s[n:]
	}
	if len(s) > 0 {
		chunks = append(chunks, s)
	}
	return chunks
}
