package reflex

import (
	"strconv"
)

// Rectangle intensities on the red channel.
const (
	BaseIntensity = 0.5   // Both sides when nothing is highlighted
	DefaultBias   = 0.125 // Shift toward the highlighted side
)

// View is what a frontend paints for a frame. It depends only on the game
// state; layout and sizes belong to the frontend.
type View struct {
	Text      string
	Highlight Side // SideNone when no side is highlighted
}

// Brighter reports which side is drawn brighter, if any.
func (v View) Brighter() (Side, bool) {
	return v.Highlight, v.Highlight != SideNone
}

// Intensity returns the red-channel intensities of the left and right
// rectangles: BaseIntensity shifted by bias toward the highlighted side.
func (v View) Intensity(bias float64) (left, right float64) {
	switch v.Highlight {
	case SideLeft:
		return BaseIntensity + bias, BaseIntensity - bias
	case SideRight:
		return BaseIntensity - bias, BaseIntensity + bias
	default:
		return BaseIntensity, BaseIntensity
	}
}

// ViewOf projects a state to its view. It is total over all states.
func ViewOf(s State) View {
	switch s := s.(type) {
	case Preparing:
		return View{Text: "time to start: " + FormatTime(s.RemainingTime)}
	case Running:
		return View{Text: "elapsed time: " + FormatTime(s.ElapsedTime), Highlight: s.Side}
	case FalseStart:
		return View{Text: "False start!"}
	case Result:
		verdict := "lose"
		if s.Correct {
			verdict = "win"
		}
		return View{
			Text:      "You " + verdict + "! Elapsed time: " + FormatTime(s.ElapsedTime),
			Highlight: s.Side,
		}
	default:
		return View{Text: "Press <Space> to start"}
	}
}

// FormatTime formats seconds with exactly two decimals. The exact binary
// value is rounded, ties to even: 1.005 is "1.00", 0.125 is "0.12".
func FormatTime(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 2, 64)
}
