// Package core provides fundamental types and utilities shared by the game
// and its frontends. It contains no external dependencies (especially no
// Bubble Tea or Ebiten) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in frontend units
// (terminal cells or window pixels).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Layout is the screen split used by every frontend: a status text area at
// the top and two side panels filling the rest, separated by a gutter.
type Layout struct {
	Text  Rect
	Left  Rect
	Right Rect
}

// SplitLayout computes the layout for a w×h view. textH is the height of the
// status text area; padX and padY are the horizontal and vertical padding.
// The gutter between the panels is padX wide.
func SplitLayout(w, h, textH, padX, padY int) Layout {
	sideTop := textH + 2*padY
	sideH := Max(h-sideTop-padY, 0)
	sideW := Max((w-3*padX)/2, 0)

	return Layout{
		Text:  NewRect(padX, padY, Max(w-2*padX, 0), textH),
		Left:  NewRect(padX, sideTop, sideW, sideH),
		Right: NewRect(2*padX+sideW, sideTop, sideW, sideH),
	}
}

// ScaledPadding returns padding proportional to the view width:
// 20 units per 512 of width, never less than one.
func ScaledPadding(w int) int {
	return Max(w*20/512, 1)
}

// FontSize returns the text height for a view width:
// 32 units per 512 of width, never less than one.
func FontSize(w int) int {
	return Max(w*32/512, 1)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
