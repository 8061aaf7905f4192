package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vacmate/internal/envmap"
	"vacmate/internal/robot"
)

// renderDashboard renders the at-a-glance status view.
func (m Model) renderDashboard(height int) string {
	styles := m.theme.Styles()
	status := m.snapshot.Status

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Robot"))
	b.WriteString("\n")

	if !m.snapshot.HasStatus {
		b.WriteString(styles.MutedText.Render("Waiting for first status report..."))
	} else {
		rows := []struct{ label, value string }{
			{"State", strings.ToUpper(status.State)},
			{"Battery", batteryGauge(status.Battery, 14)},
			{"Fan speed", fanSpeedLabel(status.FanSpeed)},
			{"Cleaned area", fmt.Sprintf("%.1f m²", status.CleanedAreaM2)},
			{"Clean time", formatCleanTime(status.CleanTimeSec)},
			{"Firmware", status.Firmware},
		}
		for _, row := range rows {
			if row.value == "" {
				continue
			}
			b.WriteString(m.labelValue(row.label, row.value))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Text.Bold(true).Render("Map"))
	b.WriteString("\n")

	derived := envmap.Derive(m.mapView.State)
	b.WriteString(m.labelValue("Zones", fmt.Sprintf("%d", derived.ZoneCount)))
	b.WriteString("\n")
	b.WriteString(m.labelValue("Mapped area", fmt.Sprintf("%.1f m²", derived.MappedAreaM2)))
	b.WriteString("\n")
	b.WriteString(m.labelValue("Obstacles", fmt.Sprintf("%d", derived.ObstacleCount)))
	b.WriteString("\n")
	if !derived.LastUpdated.IsZero() {
		age := m.labelValue("Updated", derived.LastUpdated.Format("15:04:05"))
		b.WriteString(age)
		if derived.StaleAfter(m.staleAfter) {
			b.WriteString(" " + styles.WarningText.Render("(stale)"))
		}
		b.WriteString("\n")
	}
	if m.mapView.IsOffline() {
		b.WriteString(styles.DangerText.Render("Map telemetry offline"))
		b.WriteString("\n")
	}

	// Next scheduled run preview
	if next := m.nextEnabledEntry(); next != nil {
		b.WriteString("\n")
		b.WriteString(styles.Text.Bold(true).Render("Next schedule"))
		b.WriteString("\n")
		b.WriteString(m.labelValue(next.DaysLabel(), next.StartTime+" ("+fanSpeedLabel(next.FanSpeed)+")"))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Height(height).
		Render(b.String())
}

// labelValue renders a single "Label  value" row with themed styles.
func (m Model) labelValue(label, value string) string {
	styles := m.theme.Styles()
	labelStyle := styles.MutedText.Width(14)
	return labelStyle.Render(label) + styles.Text.Render(value)
}

// nextEnabledEntry returns the first enabled schedule entry, if any.
func (m Model) nextEnabledEntry() *robot.ScheduleEntry {
	for i := range m.snapshot.Schedule {
		if m.snapshot.Schedule[i].Enabled {
			return &m.snapshot.Schedule[i]
		}
	}
	return nil
}
