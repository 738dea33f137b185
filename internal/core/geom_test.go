package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.Empty() {
		t.Error("Empty() should be false for a 20x15 rect")
	}
	if !NewRect(0, 0, 0, 5).Empty() {
		t.Error("Empty() should be true for a zero-width rect")
	}
}

func TestSplitLayoutWindow(t *testing.T) {
	// 512x512 window, 32px text, 20px padding
	l := SplitLayout(512, 512, 32, 20, 20)

	if l.Text != NewRect(20, 20, 472, 32) {
		t.Errorf("Text = %+v, expected {20 20 472 32}", l.Text)
	}
	if l.Left != NewRect(20, 72, 226, 420) {
		t.Errorf("Left = %+v, expected {20 72 226 420}", l.Left)
	}
	if l.Right != NewRect(266, 72, 226, 420) {
		t.Errorf("Right = %+v, expected {266 72 226 420}", l.Right)
	}

	// Gutter between panels equals the padding
	if gutter := l.Right.X - l.Left.Right(); gutter != 20 {
		t.Errorf("gutter = %d, expected 20", gutter)
	}
	// Right margin equals the padding
	if margin := 512 - l.Right.Right(); margin != 20 {
		t.Errorf("right margin = %d, expected 20", margin)
	}
}

func TestSplitLayoutTerminal(t *testing.T) {
	l := SplitLayout(80, 24, 1, 3, 1)

	if l.Left.W != l.Right.W || l.Left.H != l.Right.H {
		t.Errorf("panels should be equal, got %+v and %+v", l.Left, l.Right)
	}
	if l.Left.Y != 3 {
		t.Errorf("panels should start below the text, Y = %d, expected 3", l.Left.Y)
	}
	if l.Left.Bottom() != 23 {
		t.Errorf("panels should leave one row of padding, Bottom() = %d, expected 23", l.Left.Bottom())
	}
	if l.Right.Right() > 80 {
		t.Errorf("right panel overflows the screen: %+v", l.Right)
	}
}

func TestSplitLayoutTooSmall(t *testing.T) {
	l := SplitLayout(4, 3, 1, 3, 1)

	if !l.Left.Empty() || !l.Right.Empty() {
		t.Errorf("panels should be empty on a tiny screen, got %+v and %+v", l.Left, l.Right)
	}
}

func TestScaledPadding(t *testing.T) {
	tests := []struct {
		width, expected int
	}{
		{512, 20},
		{1024, 40},
		{80, 3},
		{10, 1}, // never below one
		{0, 1},
	}

	for _, tc := range tests {
		if got := ScaledPadding(tc.width); got != tc.expected {
			t.Errorf("ScaledPadding(%d) = %d, expected %d", tc.width, got, tc.expected)
		}
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		width, expected int
	}{
		{512, 32},
		{1024, 64},
		{256, 16},
		{600, 37},
		{10, 1},
		{0, 1},
	}

	for _, tc := range tests {
		if got := FontSize(tc.width); got != tc.expected {
			t.Errorf("FontSize(%d) = %d, expected %d", tc.width, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
