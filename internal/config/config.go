// Package config provides YAML-based configuration loading for the
// puzzle: board shape, keyboard layout, and storage location.
package config

import (
	"fmt"
	"strings"

	"github.com/okigiri/fifteen/internal/puzzle"
)

// Config is the full application configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Keys    KeysConfig    `yaml:"keys"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig defines the puzzle dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Shape converts the board section to an engine shape.
func (b BoardConfig) Shape() puzzle.Shape {
	return puzzle.Shape{Width: b.Width, Height: b.Height}
}

// KeysConfig maps keyboard characters to board cells. Rows are laid out
// row-major from the top-left of the board; keys beyond the board edge are
// ignored, so the default 4x4 layout degrades gracefully on other shapes.
type KeysConfig struct {
	Rows []string `yaml:"rows"`
}

// CellFor returns the board cell a key character addresses, if any.
func (k KeysConfig) CellFor(key string, shape puzzle.Shape) (puzzle.Point, bool) {
	for y, row := range k.Rows {
		if y >= shape.Height {
			break
		}
		for x, r := range []rune(row) {
			if x >= shape.Width {
				break
			}
			if string(r) == key {
				return puzzle.Point{X: x, Y: y}, true
			}
		}
	}
	return puzzle.Point{}, false
}

// StorageConfig defines where solve records live.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Validate checks the configuration for contradictions.
func (c Config) Validate() error {
	if !c.Board.Shape().Valid() {
		return fmt.Errorf("config: board must be at least 2x2, got %dx%d",
			c.Board.Width, c.Board.Height)
	}

	seen := map[rune]bool{}
	for i, row := range c.Keys.Rows {
		if strings.TrimSpace(row) != row {
			return fmt.Errorf("config: key row %d has surrounding whitespace", i)
		}
		for _, r := range row {
			if seen[r] {
				return fmt.Errorf("config: key %q bound to more than one cell", r)
			}
			seen[r] = true
		}
	}
	return nil
}

// Preset names a predefined board shape.
type Preset string

const (
	PresetSmall   Preset = "small"   // 3x3
	PresetClassic Preset = "classic" // 4x4, the 15-puzzle
	PresetLarge   Preset = "large"   // 5x5
)

// ShapeForPreset returns the board shape for a named preset.
func ShapeForPreset(p Preset) (puzzle.Shape, error) {
	switch p {
	case PresetSmall:
		return puzzle.Shape{Width: 3, Height: 3}, nil
	case PresetClassic:
		return puzzle.Shape{Width: 4, Height: 4}, nil
	case PresetLarge:
		return puzzle.Shape{Width: 5, Height: 5}, nil
	default:
		return puzzle.Shape{}, fmt.Errorf("config: unknown preset %q", p)
	}
}

// ParseShape parses a "WxH" size string, e.g. "4x4".
func ParseShape(s string) (puzzle.Shape, error) {
	var shape puzzle.Shape
	if _, err := fmt.Sscanf(s, "%dx%d", &shape.Width, &shape.Height); err != nil {
		return puzzle.Shape{}, fmt.Errorf("config: invalid size %q (want WxH): %w", s, err)
	}
	if !shape.Valid() {
		return puzzle.Shape{}, fmt.Errorf("config: size %s must be at least 2x2", shape)
	}
	return shape, nil
}
