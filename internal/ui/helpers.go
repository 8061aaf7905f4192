package ui

import (
	"fmt"
	"strings"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// formatCleanTime renders a cleaning duration in seconds as "1h 04m" or "12m 30s".
func formatCleanTime(seconds int) string {
	if seconds <= 0 {
		return "0m"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// batteryGauge renders a fixed-width battery bar like "[████░░░░░░] 42%".
func batteryGauge(percent, width int) string {
	if width < 1 {
		width = 10
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(strings.Repeat("█", filled))
	b.WriteString(strings.Repeat("░", width-filled))
	b.WriteString("]")
	return fmt.Sprintf("%s %d%%", b.String(), percent)
}

// fanSpeedLabel maps firmware fan speed tokens to display names.
func fanSpeedLabel(speed string) string {
	switch speed {
	case "quiet":
		return "Quiet"
	case "standard":
		return "Standard"
	case "turbo":
		return "Turbo"
	case "max":
		return "Max"
	default:
		return speed
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
