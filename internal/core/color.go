package core

import (
	"fmt"
	"math"
)

// Color is a 24-bit RGB color used for cell backgrounds and window fills.
// The zero value means "no color": the frontend's default background.
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB returns an opaque color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Red returns a pure red color with the given channel intensity in [0, 1].
func Red(intensity float64) Color {
	return RGB(channel(intensity), 0, 0)
}

// Gray returns a neutral gray with the given intensity in [0, 1].
func Gray(intensity float64) Color {
	c := channel(intensity)
	return RGB(c, c, c)
}

// channel converts an intensity in [0, 1] to an 8-bit channel value.
func channel(intensity float64) uint8 {
	return uint8(math.Round(ClampF(intensity, 0, 1) * 255))
}

// Hex returns the color as "#rrggbb", or "" for the zero color.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements image/color.Color so a Color can be handed straight to
// graphics libraries. The zero color is fully transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if !c.Set {
		return 0, 0, 0, 0
	}
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}
