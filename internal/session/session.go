package session

import (
	"time"

	"github.com/okigiri/fifteen/internal/puzzle"
)

// Session owns one board, its seed, the session state, and the move
// history. All operations are synchronous; callers with multiple
// goroutines must serialize access through a single owner.
type Session struct {
	board   *puzzle.Board
	seed    puzzle.Seed
	state   State
	history []string

	now func() time.Time // swappable clock for tests
}

// New creates a session over a freshly generated board with an
// entropy-sourced seed.
func New(shape puzzle.Shape) (*Session, error) {
	board, seed, err := puzzle.NewRandom(shape)
	if err != nil {
		return nil, err
	}
	return &Session{
		board: board,
		seed:  seed,
		state: notSolving(),
		now:   time.Now,
	}, nil
}

// NewWithSeed creates a session over the board deterministically generated
// from the given seed.
func NewWithSeed(shape puzzle.Shape, seed puzzle.Seed) *Session {
	return &Session{
		board: puzzle.New(shape, seed),
		seed:  seed,
		state: notSolving(),
		now:   time.Now,
	}
}

// SlideFrom executes one move request against the board and feeds the
// outcome into the state machine. token identifies the input that produced
// the request (a key, for display); it is appended to the history only
// when tiles actually moved. Returns the number of tiles displaced.
func (s *Session) SlideFrom(origin puzzle.Point, token string) int {
	return s.applyMove(s.board.SlideFrom(origin), token)
}

// SlideTowards is the direction-parameterized move entry point; it drives
// the same transitions as SlideFrom.
func (s *Session) SlideTowards(dir puzzle.Direction, distance int, token string) int {
	return s.applyMove(s.board.SlideTowards(dir, distance), token)
}

// applyMove runs the session transitions for one reported move outcome:
//
//	NotSolving --(moved > 0)--> Solving{since: now}
//	Solving    --(moved > 0, board solved)--> Solved{took: now - since}
//
// A 0-move outcome is a normal no-op, not an error.
func (s *Session) applyMove(moved int, token string) int {
	if moved == 0 {
		return 0
	}
	s.history = append(s.history, token)

	switch s.state.phase {
	case NotSolving:
		s.state = solving(s.now())
	case Solving:
		if s.board.IsSolved() {
			s.state = solved(s.now().Sub(s.state.since))
		}
	}
	return moved
}

// Reset regenerates the board at the same shape from a fresh random seed,
// clears the history, and returns the session to NotSolving. This is the
// "space bar" operation; it always succeeds (entropy failure keeps the
// previous board and is reported).
func (s *Session) Reset() error {
	board, seed, err := puzzle.NewRandom(s.board.Shape())
	if err != nil {
		return err
	}
	s.board = board
	s.seed = seed
	s.history = nil
	s.state = notSolving()
	return nil
}

// ResetSeed regenerates the board at the same shape from an explicit seed.
func (s *Session) ResetSeed(seed puzzle.Seed) {
	s.board = puzzle.New(s.board.Shape(), seed)
	s.seed = seed
	s.history = nil
	s.state = notSolving()
}

// ForceNotSolving unconditionally clears the clock. Debug command.
func (s *Session) ForceNotSolving() {
	s.state = notSolving()
}

// ForceSolving unconditionally restarts the clock. Debug command.
func (s *Session) ForceSolving() {
	s.state = solving(s.now())
}

// ForceSolved freezes the elapsed time, but only while Solving (there is
// no start instant to compute from otherwise); in any other phase it is
// silently ignored. Debug command.
func (s *Session) ForceSolved() {
	if s.state.phase != Solving {
		return
	}
	s.state = solved(s.now().Sub(s.state.since))
}

// SolveTime reports the elapsed time of the attempt. The second return is
// false in NotSolving. While Solving the value is computed from the live
// clock on every call.
func (s *Session) SolveTime() (time.Duration, bool) {
	return s.state.solveTime(s.now())
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Phase returns the active state variant.
func (s *Session) Phase() Phase {
	return s.state.phase
}

// History returns a snapshot of the input tokens that produced successful
// moves since the last reset.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

// Shape returns the board dimensions.
func (s *Session) Shape() puzzle.Shape {
	return s.board.Shape()
}

// Cells returns a snapshot of the board arrangement.
func (s *Session) Cells() []int {
	return s.board.Cells()
}

// PositionOf returns the current coordinate of a label.
func (s *Session) PositionOf(label int) puzzle.Point {
	return s.board.PositionOf(label)
}

// HolePosition returns the current coordinate of the hole.
func (s *Session) HolePosition() puzzle.Point {
	return s.board.HolePosition()
}

// IsSolved reports whether the board is in the canonical ordering.
func (s *Session) IsSolved() bool {
	return s.board.IsSolved()
}

// Seed returns the seed the current board was generated from.
func (s *Session) Seed() puzzle.Seed {
	return s.seed
}
