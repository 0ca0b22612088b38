// fifteen is a terminal sliding-tile puzzle with seeded, shareable boards.
//
// Usage:
//
//	fifteen play               - Play a puzzle
//	fifteen scores             - Browse best solve times
//	fifteen serve              - Start SSH server for remote play
//	fifteen seed               - Generate or inspect board seeds
//
// Global flags:
//
//	--config <path>  - Path to a config YAML
//	--db <path>      - Override the solves database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okigiri/fifteen/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fifteen",
	Short: "A sliding-tile puzzle in your terminal",
	Long: `fifteen is a terminal 15-puzzle. Boards are generated from 32-byte
seeds, so any puzzle can be shared and replayed exactly by passing its
encoded seed around.

Available commands:
  play     - Play a puzzle
  scores   - Browse best solve times
  serve    - Start SSH server for remote play
  seed     - Generate or inspect board seeds

Examples:
  fifteen play
  fifteen play --preset large
  fifteen play --seed 27A_Gk0Fk3Xo0cfoyV5bgOpainSnLI3g5naAYzVO9Wc
  fifteen scores --size 4x4
  fifteen serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solves database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// loadConfig reads the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}
