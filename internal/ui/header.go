package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar across the top of every view.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if !m.snapshot.HasStatus {
		return m.renderConnectingHeader(styles, bg)
	}

	content := m.buildStatusContent(styles, bg)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(content)
}

// renderConnectingHeader shows the connecting/error state.
func (m Model) renderConnectingHeader(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)

	if m.snapshot.LastError != nil {
		last := "soon"
		if !m.lastUpdated.IsZero() {
			last = m.lastUpdated.Format("15:04:05")
		}
		errorMsg := classifyConnectionError(m.snapshot.LastError)

		parts := []string{
			bg.Render("vacmate", styles.Logo),
			bg.Render("ROBOT "+errorMsg, styles.DangerText.Bold(true)),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
			bg.Render(last, styles.MutedText),
		}
		return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
	}

	return styles.Header.Width(m.width).Render(
		bg.Render("vacmate", styles.Logo) + sep +
			bg.Render("Connecting to robot...", styles.WarningText.Bold(true)),
	)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < 90
	status := m.snapshot.Status

	var parts []string

	parts = append(parts, bg.Render("vacmate", styles.Logo))

	// State badge
	parts = append(parts, styles.StatusStyle(status.State).Render(strings.ToUpper(status.State)))

	// Battery
	gaugeWidth := 10
	if compact {
		gaugeWidth = 6
	}
	battStyle := styles.Text
	switch {
	case status.Battery <= 15:
		battStyle = styles.DangerText
	case status.Battery <= 35:
		battStyle = styles.WarningText
	}
	parts = append(parts, bg.Render(batteryGauge(status.Battery, gaugeWidth), battStyle))
	if status.Charging() {
		parts = append(parts, bg.Render("⚡", styles.SuccessText))
	}

	// Fan speed
	if !compact {
		parts = append(parts,
			bg.Render("Fan:", styles.MutedText)+bg.Space()+
				bg.Render(fanSpeedLabel(status.FanSpeed), styles.Text),
		)
	}

	// Map activity indicator
	if m.mapView.Scanning {
		parts = append(parts, bg.Render(m.spin.View()+" map", styles.InfoText))
	}

	// Timestamp with relative indicator
	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	// Offline / error indicators
	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("OFFLINE", styles.DangerText.Bold(true)))
	} else if m.snapshot.LastError != nil {
		maxErr := 60
		if compact {
			maxErr = 30
		}
		errText := truncate(fmt.Sprintf("%v", m.snapshot.LastError), maxErr)
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(errText, styles.DangerText),
		)
	}
	if status.Error != "" {
		parts = append(parts,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(truncate(status.Error, 40), styles.WarningText),
		)
	}

	// Transient command feedback
	if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.InfoText))
	}

	return bg.Join(parts, "  ")
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.lastUpdated)
	timeStr := m.lastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar along the bottom.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewControl:
		commands = []cmd{
			{"w/a/s/d", "Drive"},
			{"x", "Stop"},
			{"f", "Fan " + fanSpeedLabel(m.fanSpeed)},
			{"c", "Clean"},
			{"p", "Pause"},
			{"?", "More"},
		}
	case ViewSchedule:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"Space", "Toggle"},
			{"1/2/4", "Views"},
			{"?", "More"},
		}
	case ViewMap:
		if m.adding {
			commands = []cmd{
				{"enter", "Create zone"},
				{"esc", "Cancel"},
			}
		} else {
			commands = []cmd{
				{"j/k", "Navigate"},
				{"enter", "Select"},
				{"x", "Delete"},
				{"a", "Add zone"},
				{"s", "Rescan"},
				{"?", "More"},
			}
		}
	default: // ViewDashboard
		commands = []cmd{
			{"c", "Clean"},
			{"p", "Pause"},
			{"d", "Dock"},
			{"Tab", "Views"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Footer.Width(m.width).Render(bg.Join(segments, "  "))
}
