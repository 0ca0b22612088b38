package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okigiri/fifteen/internal/config"
	"github.com/okigiri/fifteen/internal/puzzle"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperGridKeys(t *testing.T) {
	cfg := config.Default()
	km := NewKeyMapper(cfg.Keys, cfg.Board.Shape())

	tests := []struct {
		key  string
		cell puzzle.Point
	}{
		{key: "4", cell: puzzle.Point{X: 0, Y: 0}},
		{key: "u", cell: puzzle.Point{X: 3, Y: 1}},
		{key: "f", cell: puzzle.Point{X: 0, Y: 2}},
		{key: "m", cell: puzzle.Point{X: 3, Y: 3}},
	}

	for _, tt := range tests {
		in := km.Map(runeKey(tt.key))
		if in.Kind != InputSlideCell {
			t.Errorf("Map(%q).Kind = %v, want InputSlideCell", tt.key, in.Kind)
			continue
		}
		if in.Cell != tt.cell {
			t.Errorf("Map(%q).Cell = %v, want %v", tt.key, in.Cell, tt.cell)
		}
		if in.Token != tt.key {
			t.Errorf("Map(%q).Token = %q, want the key itself", tt.key, in.Token)
		}
	}
}

func TestKeyMapperControlKeys(t *testing.T) {
	cfg := config.Default()
	km := NewKeyMapper(cfg.Keys, cfg.Board.Shape())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want InputKind
	}{
		{name: "space resets", msg: runeKey(" "), want: InputReset},
		{name: "shift-d toggles dev mode", msg: runeKey("D"), want: InputDevToggle},
		{name: "1 forces not-solving", msg: runeKey("1"), want: InputForceNotSolving},
		{name: "2 forces solving", msg: runeKey("2"), want: InputForceSolving},
		{name: "3 forces solved", msg: runeKey("3"), want: InputForceSolved},
		{name: "q quits", msg: runeKey("q"), want: InputQuit},
		{name: "ctrl+c quits", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, want: InputQuit},
		{name: "unbound key is ignored", msg: runeKey("z"), want: InputNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if in := km.Map(tt.msg); in.Kind != tt.want {
				t.Errorf("Map() = %v, want %v", in.Kind, tt.want)
			}
		})
	}
}

func TestKeyMapperArrows(t *testing.T) {
	cfg := config.Default()
	km := NewKeyMapper(cfg.Keys, cfg.Board.Shape())

	tests := []struct {
		msg  tea.KeyMsg
		dir  puzzle.Direction
	}{
		{msg: tea.KeyMsg{Type: tea.KeyUp}, dir: puzzle.DirUp},
		{msg: tea.KeyMsg{Type: tea.KeyDown}, dir: puzzle.DirDown},
		{msg: tea.KeyMsg{Type: tea.KeyLeft}, dir: puzzle.DirLeft},
		{msg: tea.KeyMsg{Type: tea.KeyRight}, dir: puzzle.DirRight},
	}

	for _, tt := range tests {
		in := km.Map(tt.msg)
		if in.Kind != InputSlideDir {
			t.Errorf("Map(%v).Kind = %v, want InputSlideDir", tt.msg, in.Kind)
			continue
		}
		if in.Dir != tt.dir {
			t.Errorf("Map(%v).Dir = %v, want %v", tt.msg, in.Dir, tt.dir)
		}
		if in.Token == "" {
			t.Errorf("Map(%v) should carry a history token", tt.msg)
		}
	}
}
