package reflex

import (
	"math/rand"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

// Side is the half of the screen the cue appears on.
type Side int

const (
	// SideNone is only used by View to mean "nothing highlighted".
	// Running and Result always carry SideLeft or SideRight.
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// sideForKey maps a direction key to the side it names.
func sideForKey(k core.Key) (Side, bool) {
	switch k {
	case core.KeyLeft:
		return SideLeft, true
	case core.KeyRight:
		return SideRight, true
	}
	return SideNone, false
}

// sideFromBit maps a random bit to a side: true is left.
func sideFromBit(b bool) Side {
	if b {
		return SideLeft
	}
	return SideRight
}

// BoolSource supplies the random bits used to pick the cue side.
type BoolSource interface {
	Bool() bool
}

// RandSource is a seeded pseudo-random BoolSource.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a source seeded with seed.
// The same seed always yields the same sequence of sides.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Bool returns the next random bit.
func (s *RandSource) Bool() bool {
	return s.rng.Intn(2) == 0
}

// Sequence replays a fixed list of bits, wrapping around at the end.
// An empty Sequence always returns false.
type Sequence struct {
	bits  []bool
	drawn int
}

// NewSequence creates a Sequence that yields bits in order.
func NewSequence(bits ...bool) *Sequence {
	return &Sequence{bits: bits}
}

// Bool returns the next bit of the sequence.
func (s *Sequence) Bool() bool {
	defer func() { s.drawn++ }()
	if len(s.bits) == 0 {
		return false
	}
	return s.bits[s.drawn%len(s.bits)]
}

// Drawn returns how many bits have been consumed so far.
func (s *Sequence) Drawn() int {
	return s.drawn
}
