// Package session layers a timed game session on top of the puzzle engine.
// It is a small state machine driven purely by reported move outcomes: a
// session never inspects the board except to ask "is it solved" at
// transition time.
package session

import (
	"fmt"
	"time"
)

// Phase identifies which variant of the session state holds.
type Phase int

const (
	// NotSolving is the initial and post-reset phase; no timer data.
	NotSolving Phase = iota
	// Solving means a timed attempt is in progress.
	Solving
	// Solved means the attempt finished; elapsed time is frozen.
	Solved
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case NotSolving:
		return "NotSolving"
	case Solving:
		return "Solving"
	case Solved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// State is the tagged session state. Exactly one variant holds at any
// instant: NotSolving carries nothing, Solving carries the start instant,
// Solved carries the frozen duration. Fields are private so transitions
// are the only way state changes.
type State struct {
	phase Phase
	since time.Time     // valid while Solving
	took  time.Duration // valid once Solved
}

func notSolving() State {
	return State{phase: NotSolving}
}

func solving(since time.Time) State {
	return State{phase: Solving, since: since}
}

func solved(took time.Duration) State {
	return State{phase: Solved, took: took}
}

// Phase returns the active variant.
func (s State) Phase() Phase {
	return s.phase
}

// String formats the state with its variant data, for debug display.
func (s State) String() string {
	switch s.phase {
	case Solving:
		return fmt.Sprintf("Solving{since: %s}", s.since.Format("15:04:05.000"))
	case Solved:
		return fmt.Sprintf("Solved{took: %s}", s.took)
	default:
		return "NotSolving"
	}
}

// solveTime reports the elapsed time at the given instant. While Solving it
// is recomputed from the live clock on every call (never cached) so two
// calls microseconds apart differ; that drives the live timer display.
func (s State) solveTime(now time.Time) (time.Duration, bool) {
	switch s.phase {
	case Solving:
		return now.Sub(s.since), true
	case Solved:
		return s.took, true
	default:
		return 0, false
	}
}
