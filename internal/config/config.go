// Package config provides YAML-based configuration loading for the reflex
// game, with environment overrides and validation.
package config

// Config contains all configuration for the reflex game.
type Config struct {
	Round   RoundConfig   `yaml:"round" envPrefix:"REFLEX_"`
	Display DisplayConfig `yaml:"display" envPrefix:"REFLEX_"`
	Keys    KeysConfig    `yaml:"keys"`
}

// RoundConfig defines round timing.
type RoundConfig struct {
	Countdown float64 `yaml:"countdown" env:"COUNTDOWN"` // Seconds before the cue
}

// DisplayConfig defines presentation parameters shared by all frontends.
type DisplayConfig struct {
	BrightnessBias float64 `yaml:"brightness_bias" env:"BRIGHTNESS_BIAS"`
	ShowHelp       bool    `yaml:"show_help" env:"SHOW_HELP"`
	ShowTally      bool    `yaml:"show_tally" env:"SHOW_TALLY"`
}

// KeysConfig lists the terminal key names bound to each game key.
type KeysConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Start []string `yaml:"start"`
	Quit  []string `yaml:"quit"`
}
