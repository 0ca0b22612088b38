package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okigiri/fifteen/internal/config"
	"github.com/okigiri/fifteen/internal/platform/tui"
	"github.com/okigiri/fifteen/internal/puzzle"
	"github.com/okigiri/fifteen/internal/storage"
)

var flagScoresSize string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse best solve times",
	Long: `Open the interactive scoreboard. Tab cycles through board shapes
that have recorded solves.

Examples:
  fifteen scores
  fifteen scores --size 3x3`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresSize, "size", "", "Board size to open on, as WxH")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	shape := cfg.Board.Shape()
	if flagScoresSize != "" {
		shape, err = config.ParseShape(flagScoresSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if !shape.Valid() {
		shape = puzzle.Shape{Width: 4, Height: 4}
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := tui.RunScoreboard(store, shape); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
