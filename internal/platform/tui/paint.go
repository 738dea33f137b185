package tui

import (
	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/games/reflex"
)

// Backdrop is the grey level behind the text and rectangles.
const Backdrop = 0.5

// paint draws a frame into the screen buffer: grey backdrop, the view text
// (plus an optional status line) top-left, and the two red rectangles below.
func paint(s *core.Screen, v reflex.View, status string, bias float64) {
	s.Fill(core.Gray(Backdrop))

	textH := 1
	if status != "" {
		textH = 2
	}
	l := core.SplitLayout(s.Width(), s.Height(), textH, core.ScaledPadding(s.Width()), 1)

	left, right := v.Intensity(bias)
	s.FillRect(l.Left, core.Red(left))
	s.FillRect(l.Right, core.Red(right))

	s.DrawText(l.Text.X, l.Text.Y, v.Text)
	if status != "" {
		s.DrawText(l.Text.X, l.Text.Y+1, status)
	}
}
