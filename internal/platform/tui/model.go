package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okigiri/fifteen/internal/config"
	"github.com/okigiri/fifteen/internal/session"
	"github.com/okigiri/fifteen/internal/storage"
)

// Model is the Bubble Tea model for one puzzle run. All game semantics
// live in the session; the model only translates input events and redraws.
type Model struct {
	sess   *session.Session
	store  *storage.Store
	mapper *KeyMapper

	width  int
	height int

	devMode    bool
	quitting   bool
	solveSaved bool // one solve row per completed attempt
}

// NewModel creates a model over an existing session.
func NewModel(sess *session.Session, store *storage.Store, cfg config.Config, width, height int) Model {
	return Model{
		sess:   sess,
		store:  store,
		mapper: NewKeyMapper(cfg.Keys, sess.Shape()),
		width:  width,
		height: height,
	}
}

// Init starts the repaint ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		// Read-only repaint; the view recomputes SolveTime each frame.
		return m, tickCmd()
	}

	return m, nil
}

// handleKey dispatches one decoded input event into the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.mapper.Map(msg)

	switch in.Kind {
	case InputQuit:
		m.quitting = true
		return m, tea.Quit

	case InputReset:
		//nolint:errcheck // On entropy failure the previous board stays up.
		m.sess.Reset()
		m.solveSaved = false

	case InputDevToggle:
		m.devMode = !m.devMode

	case InputForceNotSolving:
		m.sess.ForceNotSolving()
	case InputForceSolving:
		m.sess.ForceSolving()
	case InputForceSolved:
		m.sess.ForceSolved()

	case InputSlideCell:
		m.sess.SlideFrom(in.Cell, in.Token)
		m.maybeSaveSolve()

	case InputSlideDir:
		m.sess.SlideTowards(in.Dir, 1, in.Token)
		m.maybeSaveSolve()
	}

	return m, nil
}

// maybeSaveSolve persists the solve once per completed attempt.
func (m *Model) maybeSaveSolve() {
	if m.solveSaved || m.store == nil || m.sess.Phase() != session.Solved {
		return
	}
	took, ok := m.sess.SolveTime()
	if !ok {
		return
	}
	//nolint:errcheck // Best-effort save, the game continues regardless
	m.store.SaveSolve(m.sess.Shape(), m.sess.Seed(), len(m.sess.History()), took)
	m.solveSaved = true
}

// Run starts the Bubble Tea program for a single local puzzle run.
func Run(sess *session.Session, store *storage.Store, cfg config.Config, width, height int) error {
	p := tea.NewProgram(
		NewModel(sess, store, cfg, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
