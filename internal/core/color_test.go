package core

import (
	"image/color"
	"testing"
)

func TestRedIntensity(t *testing.T) {
	tests := []struct {
		intensity float64
		expected  uint8
	}{
		{0.5, 128},
		{0.625, 159},
		{0.375, 96},
		{0, 0},
		{1, 255},
		{1.5, 255}, // clamped
		{-1, 0},    // clamped
	}

	for _, tc := range tests {
		c := Red(tc.intensity)
		if c.R != tc.expected || c.G != 0 || c.B != 0 {
			t.Errorf("Red(%v) = %+v, expected R=%d", tc.intensity, c, tc.expected)
		}
		if !c.Set {
			t.Errorf("Red(%v) should be a set color", tc.intensity)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := Gray(0.5).Hex(); got != "#808080" {
		t.Errorf("Gray(0.5).Hex() = %q, expected #808080", got)
	}
	if got := Red(0.625).Hex(); got != "#9f0000" {
		t.Errorf("Red(0.625).Hex() = %q, expected #9f0000", got)
	}
	if got := (Color{}).Hex(); got != "" {
		t.Errorf("zero Color Hex() = %q, expected empty", got)
	}
}

func TestColorRGBA(t *testing.T) {
	var c color.Color = RGB(0xff, 0x80, 0x00)

	got := color.RGBAModel.Convert(c).(color.RGBA)
	expected := color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}
	if got != expected {
		t.Errorf("RGBA conversion = %+v, expected %+v", got, expected)
	}

	_, _, _, a := Color{}.RGBA()
	if a != 0 {
		t.Errorf("zero Color should be transparent, alpha = %d", a)
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeyOther, "Other"},
		{KeyLeft, "Left"},
		{KeyRight, "Right"},
		{KeySpace, "Space"},
		{KeyEscape, "Escape"},
		{Key(42), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.key.String(); got != tc.expected {
			t.Errorf("Key(%d).String() = %q, expected %q", int(tc.key), got, tc.expected)
		}
	}
}
