package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Accepted ranges.
const (
	MinCountdown      = 1.0
	MaxCountdown      = 1.5
	MaxBrightnessBias = 0.5
)

// Fixed terminal keys that config bindings may not claim.
const (
	KeyHelp       = "?"
	KeyHistory    = "tab"
	KeyScreenshot = "ctrl+s"
)

// ReservedKeys maps each fixed key to the action it triggers.
var ReservedKeys = map[string]string{
	KeyHelp:       "help",
	KeyHistory:    "history",
	KeyScreenshot: "screenshot",
}

// Validate checks ranges and key bindings. All problems are reported together.
func (c Config) Validate() error {
	var errs []error

	cd := c.Round.Countdown
	if math.IsNaN(cd) || cd < MinCountdown || cd > MaxCountdown {
		errs = append(errs, fmt.Errorf("%w: round.countdown %v outside [%v, %v]",
			ErrInvalid, cd, MinCountdown, MaxCountdown))
	}

	bias := c.Display.BrightnessBias
	if math.IsNaN(bias) || bias <= 0 || bias > MaxBrightnessBias {
		errs = append(errs, fmt.Errorf("%w: display.brightness_bias %v outside (0, %v]",
			ErrInvalid, bias, MaxBrightnessBias))
	}

	bindings := []struct {
		name string
		keys []string
	}{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"start", c.Keys.Start},
		{"quit", c.Keys.Quit},
	}

	owner := make(map[string]string, len(ReservedKeys))
	for k, action := range ReservedKeys {
		owner[k] = action
	}
	for _, b := range bindings {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("%w: keys.%s has no keys", ErrInvalid, b.name))
		}
		for _, k := range b.keys {
			if k == "" {
				errs = append(errs, fmt.Errorf("%w: keys.%s contains an empty key", ErrInvalid, b.name))
				continue
			}
			if prev, ok := owner[k]; ok && prev != b.name {
				errs = append(errs, fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, b.name))
				continue
			}
			owner[k] = b.name
		}
	}

	return errors.Join(errs...)
}
