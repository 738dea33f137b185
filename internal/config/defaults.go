package config

import (
	_ "embed"
)

//go:embed defaults/reflex.yaml
var defaultReflexYAML []byte

// Default returns the built-in reflex configuration.
func Default() Config {
	return Config{
		Round: RoundConfig{
			Countdown: 1.0,
		},
		Display: DisplayConfig{
			BrightnessBias: 0.125,
			ShowHelp:       true,
			ShowTally:      true,
		},
		Keys: KeysConfig{
			Left:  []string{"left", "h", "a"},
			Right: []string{"right", "l", "d"},
			Start: []string{" "},
			Quit:  []string{"esc", "q", "ctrl+c"},
		},
	}
}
