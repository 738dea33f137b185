package config

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string // substring, empty for valid
	}{
		{"defaults", func(c *Config) {}, ""},
		{"countdown at min", func(c *Config) { c.Round.Countdown = 1.0 }, ""},
		{"countdown at max", func(c *Config) { c.Round.Countdown = 1.5 }, ""},
		{"countdown too short", func(c *Config) { c.Round.Countdown = 0.5 }, "round.countdown"},
		{"countdown too long", func(c *Config) { c.Round.Countdown = 2 }, "round.countdown"},
		{"countdown NaN", func(c *Config) { c.Round.Countdown = math.NaN() }, "round.countdown"},
		{"bias zero", func(c *Config) { c.Display.BrightnessBias = 0 }, "brightness_bias"},
		{"bias too large", func(c *Config) { c.Display.BrightnessBias = 0.6 }, "brightness_bias"},
		{"bias at max", func(c *Config) { c.Display.BrightnessBias = 0.5 }, ""},
		{"no left keys", func(c *Config) { c.Keys.Left = nil }, "keys.left has no keys"},
		{"empty key", func(c *Config) { c.Keys.Quit = []string{""} }, "keys.quit contains an empty key"},
		{"help key reserved", func(c *Config) { c.Keys.Left = append(c.Keys.Left, "?") }, `"?" bound to both help and left`},
		{"history key reserved", func(c *Config) { c.Keys.Right = []string{"tab"} }, `"tab" bound to both history and right`},
		{"screenshot key reserved", func(c *Config) { c.Keys.Quit = append(c.Keys.Quit, "ctrl+s") }, `"ctrl+s" bound to both screenshot and quit`},
		{"key bound twice", func(c *Config) { c.Keys.Right = append(c.Keys.Right, "h") }, `"h" bound to both left and right`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Validate() = nil, expected error containing %q", tc.wantErr)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error should wrap ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %q, expected it to contain %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Round.Countdown = 0
	cfg.Display.BrightnessBias = 1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "round.countdown") || !strings.Contains(msg, "brightness_bias") {
		t.Errorf("Validate() = %q, expected both problems reported", msg)
	}
}
