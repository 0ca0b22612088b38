package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okigiri/fifteen/internal/config"
	"github.com/okigiri/fifteen/internal/platform/tui"
	"github.com/okigiri/fifteen/internal/puzzle"
	"github.com/okigiri/fifteen/internal/session"
	"github.com/okigiri/fifteen/internal/storage"
)

var (
	flagSeed   string
	flagSize   string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a puzzle",
	Long: `Start a puzzle. Without flags the board shape comes from the config
(classic 4x4 by default) and the seed is random.

Controls:
  4567/rtyu/fghj/vbnm - Slide the tile at that grid cell (configurable)
  Arrow keys          - Slide the tile next to the hole
  Space               - New puzzle
  D                   - Toggle the dev overlay (seed, raw state)
  Q/Ctrl+C            - Quit

Board presets:
  small   - 3x3
  classic - 4x4 (the 15-puzzle)
  large   - 5x5

Examples:
  fifteen play
  fifteen play --size 5x3
  fifteen play --preset small
  fifteen play --seed 27A_Gk0Fk3Xo0cfoyV5bgOainSnLI3g5naAYzVO9Wcc`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSeed, "seed", "", "Base64-encoded board seed to replay")
	playCmd.Flags().StringVar(&flagSize, "size", "", "Board size as WxH, e.g. 4x4")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: small, classic, large")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	shape, err := resolveShape(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var sess *session.Session
	if flagSeed != "" {
		seed, seedErr := puzzle.ParseSeed(flagSeed)
		if seedErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", seedErr)
			os.Exit(1)
		}
		sess = session.NewWithSeed(shape, seed)
	} else {
		sess, err = session.New(shape)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(sess, store, cfg, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveShape picks the board shape: --size wins, then --preset, then config.
func resolveShape(cfg config.Config) (puzzle.Shape, error) {
	switch {
	case flagSize != "" && flagPreset != "":
		return puzzle.Shape{}, fmt.Errorf("--size and --preset are mutually exclusive")
	case flagSize != "":
		return config.ParseShape(flagSize)
	case flagPreset != "":
		return config.ShapeForPreset(config.Preset(flagPreset))
	default:
		shape := cfg.Board.Shape()
		if !shape.Valid() {
			return puzzle.Shape{}, fmt.Errorf("configured board %s is smaller than 2x2", shape)
		}
		return shape, nil
	}
}
