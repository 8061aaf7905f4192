package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpItem struct {
	key  string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay through its scrollable viewport.
func (m Model) renderHelp() string {
	return m.helpView.View()
}

// helpContent builds the help overlay text. It is loaded into the viewport
// when help opens so small terminals can scroll it.
func (m Model) helpContent() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"tab", "Cycle views"},
				{"1/2/3/4", "Dashboard/Control/Schedule/Map"},
				{"esc", "Cancel input / dashboard"},
				{"j/k", "Move up/down"},
			},
		},
		{
			title: "Robot",
			items: []helpItem{
				{"c", "Start cleaning"},
				{"p", "Pause"},
				{"d", "Return to dock"},
				{"f", "Cycle fan speed"},
				{"w/a/s/d", "Manual drive (control view)"},
				{"x", "Stop driving"},
			},
		},
		{
			title: "Schedule",
			items: []helpItem{
				{"Space", "Enable/disable entry"},
			},
		},
		{
			title: "Map",
			items: []helpItem{
				{"enter", "Select/deselect zone"},
				{"x", "Delete zone"},
				{"a", "Add zone"},
				{"s", "Rescan map"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"h/?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("j/k scrolls · h or ? closes"))

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}
