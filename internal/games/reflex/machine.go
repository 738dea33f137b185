// Package reflex implements the left/right reaction-time game.
// The player waits through a countdown, a side is chosen at random and shown,
// and the player must press the matching direction as fast as possible.
// Pressing any key during the countdown is a false start.
//
// The package is pure: frontends feed it time deltas and key presses and
// paint the View it derives.
package reflex

import (
	"github.com/vovakirdan/tui-reflex/internal/core"
)

// DefaultCountdown is the countdown before the cue, in seconds.
const DefaultCountdown = 1.0

// Machine is the game state machine. It exclusively owns the current State
// and the source of random bits. It is not safe for concurrent use; callers
// serialize Advance, HandleKey and View.
type Machine struct {
	state     State
	src       BoolSource
	countdown float64
}

// Option configures a Machine.
type Option func(*Machine)

// WithCountdown sets the countdown used when a round starts.
func WithCountdown(seconds float64) Option {
	return func(m *Machine) {
		m.countdown = seconds
	}
}

// New creates a machine in the Init state drawing cue sides from src.
func New(src BoolSource, opts ...Option) *Machine {
	m := &Machine{
		state:     Init{},
		src:       src,
		countdown: DefaultCountdown,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Countdown returns the countdown used when a round starts.
func (m *Machine) Countdown() float64 {
	return m.countdown
}

// Advance moves time forward by dt seconds. dt must not be negative.
// Only Preparing and Running react to time; the cue side is drawn from the
// source exactly once, when the countdown runs out.
func (m *Machine) Advance(dt float64) {
	switch s := m.state.(type) {
	case Preparing:
		remaining := s.RemainingTime - dt
		if remaining < 0 {
			// Overshoot is discarded: the cue timer starts at zero.
			m.state = Running{ElapsedTime: 0, Side: sideFromBit(m.src.Bool())}
			return
		}
		m.state = Preparing{RemainingTime: remaining}

	case Running:
		m.state = Running{ElapsedTime: s.ElapsedTime + dt, Side: s.Side}
	}
}

// HandleKey applies a key press to the current state.
// Unrecognized combinations leave the state unchanged.
func (m *Machine) HandleKey(k core.Key) {
	switch s := m.state.(type) {
	case Preparing:
		m.state = FalseStart{}

	case Running:
		pressed, ok := sideForKey(k)
		if !ok {
			return
		}
		m.state = Result{
			ElapsedTime: s.ElapsedTime,
			Side:        s.Side,
			Correct:     pressed == s.Side,
		}

	case Init, FalseStart, Result:
		if k == core.KeySpace {
			m.state = Preparing{RemainingTime: m.countdown}
		}
	}
}

// View returns the presentation of the current state.
func (m *Machine) View() View {
	return ViewOf(m.state)
}
