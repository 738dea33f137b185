package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

// textColor is the foreground of every cell; backgrounds carry the picture.
var textColor = lipgloss.Color("#000000")

// styleFor returns the lipgloss style for a cell background.
func styleFor(bg core.Color) lipgloss.Style {
	if !bg.Set {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Foreground(textColor).
		Background(lipgloss.Color(bg.Hex()))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same background to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Color]lipgloss.Style)

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startBg := s.GetCell(x, y).Background

			// Collect consecutive cells with the same background
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Background != startBg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startBg]
			if !ok {
				style = styleFor(startBg)
				styles[startBg] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
