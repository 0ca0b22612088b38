package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okigiri/fifteen/internal/config"
	"github.com/okigiri/fifteen/internal/puzzle"
	"github.com/okigiri/fifteen/internal/storage"
)

const maxScoreboardRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextShape key.Binding
	PrevShape key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextShape, k.PrevShape, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextShape, k.PrevShape, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextShape: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next board"),
		),
		PrevShape: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("S-tab", "prev board"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

// ScoreboardModel shows the best solve times per board shape.
type ScoreboardModel struct {
	store   *storage.Store
	shapes  []string
	current int
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int
	loadErr error
}

// NewScoreboardModel creates a scoreboard starting at the given shape.
func NewScoreboardModel(store *storage.Store, initial puzzle.Shape) ScoreboardModel {
	m := ScoreboardModel{
		store: store,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
		table: table.New(
			table.WithColumns([]table.Column{
				{Title: "Rank", Width: 5},
				{Title: "Time", Width: 12},
				{Title: "Moves", Width: 6},
				{Title: "Seed", Width: 14},
				{Title: "Date", Width: 16},
			}),
			table.WithFocused(true),
			table.WithHeight(12),
		),
	}
	m.shapes = m.availableShapes(initial.String())
	m.reload()
	return m
}

// availableShapes lists every solved shape plus the initial one, sorted.
func (m *ScoreboardModel) availableShapes(initial string) []string {
	seen := map[string]bool{initial: true}
	if stats, err := m.store.AllShapeStats(); err == nil {
		for shape := range stats {
			seen[shape] = true
		}
	}
	shapes := make([]string, 0, len(seen))
	for shape := range seen {
		shapes = append(shapes, shape)
	}
	sort.Strings(shapes)
	return shapes
}

// reload fetches rows for the currently selected shape.
func (m *ScoreboardModel) reload() {
	shape, err := config.ParseShape(m.shapes[m.current])
	if err != nil {
		m.loadErr = err
		return
	}
	entries, err := m.store.BestTimes(shape, maxScoreboardRows)
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			formatDuration(e.Duration),
			fmt.Sprintf("%d", e.Moves),
			truncateSeed(e.Seed),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextShape):
			m.current = (m.current + 1) % len(m.shapes)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.PrevShape):
			m.current = (m.current - 1 + len(m.shapes)) % len(m.shapes)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	title := scoreboardTitleStyle.Render(fmt.Sprintf("Best times — %s", m.shapes[m.current]))

	body := m.table.View()
	if m.loadErr != nil {
		body = fmt.Sprintf("cannot load solves: %v", m.loadErr)
	} else if len(m.table.Rows()) == 0 {
		body = "No solves recorded yet."
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body, "", m.help.View(m.keys))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// RunScoreboard starts the interactive scoreboard.
func RunScoreboard(store *storage.Store, initial puzzle.Shape) error {
	p := tea.NewProgram(NewScoreboardModel(store, initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// formatDuration renders a solve duration as "SS.mmm s".
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%d.%03ds", int(d/time.Second), int(d%time.Second)/int(time.Millisecond))
}

// truncateSeed shortens an encoded seed for table display.
func truncateSeed(seed string) string {
	if len(seed) <= 12 {
		return seed
	}
	return seed[:11] + "…"
}
