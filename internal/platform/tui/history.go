package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reflex/internal/games/reflex"
)

// newHistoryTable creates the round history table sized for the terminal.
func newHistoryTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Outcome", Width: 12},
		{Title: "Side", Width: 6},
		{Title: "Time", Width: 8},
	}

	// Give spare width to the outcome column
	if extra := width - 4 - 40; extra > 0 {
		columns[1].Width += min(extra, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 1)), // Leave room for title, tally, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// historyRows converts outcomes to table rows.
func historyRows(outcomes []reflex.Outcome) []table.Row {
	rows := make([]table.Row, len(outcomes))
	for i, o := range outcomes {
		side, elapsed := "-", "-"
		if !o.FalseStart {
			side = o.Side.String()
			elapsed = reflex.FormatTime(o.ElapsedTime)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", o.Round),
			o.Label(),
			side,
			elapsed,
		}
	}
	return rows
}

// renderHistory renders the history screen without the help bar.
func (m Model) renderHistory() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("ROUND HISTORY"))
	b.WriteString("\n")
	b.WriteString(m.tally.String())
	b.WriteString("\n\n")

	if m.tally.Rounds == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("No rounds played yet."))
		return b.String()
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.history.View()))

	return b.String()
}
