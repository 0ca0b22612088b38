package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okigiri/fifteen/internal/config"
	"github.com/okigiri/fifteen/internal/puzzle"
)

// InputKind classifies a key press into a semantic game event.
type InputKind int

const (
	InputNone InputKind = iota
	InputSlideCell      // a key-grid key: slide from an absolute cell
	InputSlideDir       // an arrow key: slide the tile next to the hole
	InputReset
	InputDevToggle
	InputForceNotSolving
	InputForceSolving
	InputForceSolved
	InputQuit
)

// Input is a decoded key press.
type Input struct {
	Kind  InputKind
	Cell  puzzle.Point     // valid for InputSlideCell
	Dir   puzzle.Direction // valid for InputSlideDir
	Token string           // history token for slides
}

// KeyMapper translates Bubble Tea key messages to game inputs. The cell
// grid comes from configuration; everything else is fixed.
type KeyMapper struct {
	keys  config.KeysConfig
	shape puzzle.Shape
}

// NewKeyMapper creates a key mapper for the given key grid and board shape.
func NewKeyMapper(keys config.KeysConfig, shape puzzle.Shape) *KeyMapper {
	return &KeyMapper{keys: keys, shape: shape}
}

// Map decodes one key message.
func (km *KeyMapper) Map(msg tea.KeyMsg) Input {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return Input{Kind: InputQuit}
	case " ":
		return Input{Kind: InputReset}
	case "D":
		return Input{Kind: InputDevToggle}
	case "1":
		return Input{Kind: InputForceNotSolving}
	case "2":
		return Input{Kind: InputForceSolving}
	case "3":
		return Input{Kind: InputForceSolved}
	case "up":
		return Input{Kind: InputSlideDir, Dir: puzzle.DirUp, Token: "↑"}
	case "down":
		return Input{Kind: InputSlideDir, Dir: puzzle.DirDown, Token: "↓"}
	case "left":
		return Input{Kind: InputSlideDir, Dir: puzzle.DirLeft, Token: "←"}
	case "right":
		return Input{Kind: InputSlideDir, Dir: puzzle.DirRight, Token: "→"}
	}

	if cell, ok := km.keys.CellFor(key, km.shape); ok {
		return Input{Kind: InputSlideCell, Cell: cell, Token: key}
	}

	return Input{Kind: InputNone}
}
