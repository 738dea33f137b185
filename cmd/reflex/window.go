package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 512x512 resizable window titled "Left/Right" and play there.

Uses the same key bindings as the terminal. Keys with no window
equivalent (such as ctrl+c) are ignored; Escape always quits.

Examples:
  reflex window
  reflex window --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runtime := core.RuntimeConfig{
		ScreenW:  window.Size,
		ScreenH:  window.Size,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("starting window game", "fps", flagFPS)

	if err := window.Run(cfg, runtime, logger); err != nil {
		logger.Error("window game failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
