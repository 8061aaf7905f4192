package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderSchedule renders the cleaning schedule list.
func (m Model) renderSchedule(height int) string {
	styles := m.theme.Styles()

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Cleaning schedule"))
	b.WriteString("\n\n")

	if len(m.snapshot.Schedule) == 0 {
		b.WriteString(styles.MutedText.Render("No schedule entries."))
		b.WriteString("\n")
	}

	for i, entry := range m.snapshot.Schedule {
		enabled := styles.FaintText.Render("○")
		if entry.Enabled {
			enabled = styles.SuccessText.Render("●")
		}

		line := enabled + " " +
			entry.StartTime + "  " +
			entry.DaysLabel() + "  " +
			fanSpeedLabel(entry.FanSpeed)

		if i == m.scheduleIndex {
			b.WriteString(styles.Selected.Render("> " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Space toggles the highlighted entry"))
	b.WriteString("\n")

	return lipgloss.NewStyle().
		Padding(1, 2).
		Height(height).
		Render(b.String())
}
