package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reflex/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML.

The config is searched in this order:
  --config <path>, ~/.reflex/reflex.yaml, ./configs/reflex.yaml,
  then the built-in defaults.
REFLEX_COUNTDOWN, REFLEX_BRIGHTNESS_BIAS, REFLEX_SHOW_HELP and
REFLEX_SHOW_TALLY override the file.

Examples:
  reflex config
  reflex config > ~/.reflex/reflex.yaml
  REFLEX_COUNTDOWN=1.5 reflex config`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	if err := printConfig(cmd.OutOrStdout()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printConfig writes the effective config, preceded by a comment naming its source.
func printConfig(w io.Writer) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	data, err := cfg.Encode()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "# source: %s\n%s", source, data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// loadConfig loads the config and logs where it came from.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	switch source {
	case config.SourceEmbedded, config.SourceBuiltin:
		logger.Warn("no config file found, using defaults", "source", source)
	default:
		logger.Info("config loaded", "source", source)
	}
	logger.Debug("config",
		"countdown", cfg.Round.Countdown,
		"brightness_bias", cfg.Display.BrightnessBias,
	)
	return cfg, nil
}
