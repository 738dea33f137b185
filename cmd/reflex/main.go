// reflex is a left/right reaction game for the terminal and the desktop.
//
// Usage:
//
//	reflex                   - Play in the terminal
//	reflex play              - Play in the terminal
//	reflex window            - Play in a desktop window
//	reflex config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for a reproducible side sequence
//	--config <path>  - Use a custom config YAML
//	--log <path>     - Write logs to a file (default: no logging)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reflex",
	Short: "Reflex - Left/Right reaction game",
	Long: `Reflex tests how fast you react to a cue.

Press Space to start a round. After the countdown one of the two
rectangles lights up: press the matching direction as fast as you can.
Pressing a direction during the countdown is a false start.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  reflex
  reflex window
  reflex --seed 42 --log ~/.reflex/reflex.log
  reflex config > ~/.reflex/reflex.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (empty = no logging)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
