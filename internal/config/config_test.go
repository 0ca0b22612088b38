package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/okigiri/fifteen/internal/puzzle"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Board.Shape() != (puzzle.Shape{Width: 4, Height: 4}) {
		t.Errorf("default board = %v, want 4x4", cfg.Board.Shape())
	}
	if len(cfg.Keys.Rows) != 4 {
		t.Errorf("default key rows = %d, want 4", len(cfg.Keys.Rows))
	}
	if cfg.Storage.Path == "" {
		t.Error("default storage path is empty")
	}
}

func TestKeysCellFor(t *testing.T) {
	cfg := Default()
	shape := cfg.Board.Shape()

	tests := []struct {
		key    string
		want   puzzle.Point
		wantOK bool
	}{
		{key: "4", want: puzzle.Point{X: 0, Y: 0}, wantOK: true},
		{key: "7", want: puzzle.Point{X: 3, Y: 0}, wantOK: true},
		{key: "g", want: puzzle.Point{X: 1, Y: 2}, wantOK: true},
		{key: "m", want: puzzle.Point{X: 3, Y: 3}, wantOK: true},
		{key: "z", wantOK: false},
		{key: "Q", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := cfg.Keys.CellFor(tt.key, shape)
		if ok != tt.wantOK {
			t.Errorf("CellFor(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("CellFor(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestKeysCellForClipsToBoard(t *testing.T) {
	cfg := Default()
	small := puzzle.Shape{Width: 3, Height: 3}

	// "m" addresses (3,3), outside a 3x3 board.
	if _, ok := cfg.Keys.CellFor("m", small); ok {
		t.Error("key beyond the board edge should not map to a cell")
	}
	// "h" addresses (2,2), still inside.
	if got, ok := cfg.Keys.CellFor("h", small); !ok || got != (puzzle.Point{X: 2, Y: 2}) {
		t.Errorf("CellFor(h) = %v,%v, want (2,2),true", got, ok)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default is valid", mutate: func(c *Config) {}},
		{
			name:    "board too small",
			mutate:  func(c *Config) { c.Board.Width = 1 },
			wantErr: true,
		},
		{
			name:    "duplicate key binding",
			mutate:  func(c *Config) { c.Keys.Rows = []string{"abcd", "axyz"} },
			wantErr: true,
		},
		{
			name:   "no key rows at all",
			mutate: func(c *Config) { c.Keys.Rows = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "board:\n  width: 5\n  height: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Shape() != (puzzle.Shape{Width: 5, Height: 3}) {
		t.Errorf("board = %v, want 5x3", cfg.Board.Shape())
	}
	// Sections the file omits keep their defaults.
	if len(cfg.Keys.Rows) != 4 {
		t.Errorf("key rows = %d, want the default 4", len(cfg.Keys.Rows))
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load with an explicit missing path should fail")
	}
}

func TestShapeForPreset(t *testing.T) {
	tests := []struct {
		preset Preset
		want   puzzle.Shape
	}{
		{preset: PresetSmall, want: puzzle.Shape{Width: 3, Height: 3}},
		{preset: PresetClassic, want: puzzle.Shape{Width: 4, Height: 4}},
		{preset: PresetLarge, want: puzzle.Shape{Width: 5, Height: 5}},
	}

	for _, tt := range tests {
		got, err := ShapeForPreset(tt.preset)
		if err != nil {
			t.Errorf("ShapeForPreset(%q) failed: %v", tt.preset, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ShapeForPreset(%q) = %v, want %v", tt.preset, got, tt.want)
		}
	}

	if _, err := ShapeForPreset("impossible"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		input   string
		want    puzzle.Shape
		wantErr bool
	}{
		{input: "4x4", want: puzzle.Shape{Width: 4, Height: 4}},
		{input: "5x3", want: puzzle.Shape{Width: 5, Height: 3}},
		{input: "1x4", wantErr: true},
		{input: "4", wantErr: true},
		{input: "big", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseShape(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseShape(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
