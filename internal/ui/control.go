package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vacmate/internal/robot"
)

// renderControl renders the manual drive and cleaning control view.
func (m Model) renderControl(height int) string {
	styles := m.theme.Styles()
	status := m.snapshot.Status

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Manual control"))
	b.WriteString("\n\n")

	// Drive pad
	pad := [][]string{
		{" ", "w", " "},
		{"a", "x", "d"},
		{" ", "s", " "},
	}
	keyStyle := styles.AccentText.Bold(true)
	for _, row := range pad {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if cell == " " {
				b.WriteString(" ")
			} else {
				b.WriteString(keyStyle.Render(cell))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("w forward · s back · a left · d right · x stop"))
	b.WriteString("\n\n")

	if strings.EqualFold(status.State, robot.StateManual) {
		b.WriteString(styles.InfoText.Render("Manual mode active"))
	} else {
		b.WriteString(styles.FaintText.Render("Driving switches the robot to manual mode"))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.Text.Bold(true).Render("Cleaning"))
	b.WriteString("\n")
	b.WriteString(m.labelValue("Fan speed", fanSpeedLabel(m.fanSpeed)+"  (f to cycle)"))
	b.WriteString("\n")
	b.WriteString(m.labelValue("Commands", "c start · p pause · D dock"))
	b.WriteString("\n")

	if m.snapshot.IsOffline() {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render("Robot offline; commands will fail"))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Height(height).
		Render(b.String())
}

// nextFanSpeed cycles through the firmware fan speed settings.
func nextFanSpeed(current string) string {
	order := []string{robot.FanQuiet, robot.FanStandard, robot.FanTurbo, robot.FanMax}
	for i, speed := range order {
		if speed == current {
			return order[(i+1)%len(order)]
		}
	}
	return robot.FanStandard
}
