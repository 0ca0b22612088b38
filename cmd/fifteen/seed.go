package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okigiri/fifteen/internal/puzzle"
)

var seedCmd = &cobra.Command{
	Use:   "seed [encoded]",
	Short: "Generate or inspect board seeds",
	Long: `Without arguments, generates a fresh seed and prints its encoding.
With an encoded seed, validates it and shows the 4x4 board it produces.

Seeds are 32 bytes, base64-encoded with the URL-safe alphabet and no
padding. The same seed always reproduces the same board.

Examples:
  fifteen seed
  fifteen seed 27A_Gk0Fk3Xo0cfoyV5bgOainSnLI3g5naAYzVO9Wcc`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		seed, err := puzzle.NewSeed()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(seed)
		return
	}

	seed, err := puzzle.ParseSeed(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seed: %s\n\n", seed)

	shape := puzzle.Shape{Width: 4, Height: 4}
	board := puzzle.New(shape, seed)
	cells := board.Cells()
	for y := 0; y < shape.Height; y++ {
		for x := 0; x < shape.Width; x++ {
			label := cells[y*shape.Width+x]
			if label == puzzle.Hole {
				fmt.Printf("  ..")
			} else {
				fmt.Printf("  %2d", label)
			}
		}
		fmt.Println()
	}
}
