// Package tui provides the Bubble Tea integration for the puzzle: the
// board view, input mapping, the scoreboard, and SSH serving via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// repaintInterval is how often the view refreshes while the timer runs.
// The tick only reads the session (SolveTime); it never mutates state.
const repaintInterval = 33 * time.Millisecond

// TickMsg is sent to trigger a timer repaint.
type TickMsg time.Time

// tickCmd returns a command that sends the next repaint tick.
func tickCmd() tea.Cmd {
	return tea.Tick(repaintInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
