package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vacmate/internal/envmap"
	"vacmate/internal/prefs"
	"vacmate/internal/robot"
)

// handleKey routes key presses. Text input capture comes first, then global
// bindings, then the active view's bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.handleAddZoneKey(msg)
	}

	// Global bindings
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		if m.showHelp {
			m.helpView.SetContent(m.helpContent())
			m.helpView.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		if m.showHelp {
			m.helpView.SetContent(m.helpContent())
		}
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.currentView = (m.currentView + 1) % 4
		m.showHelp = false
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.currentView = (m.currentView + 3) % 4
		m.showHelp = false
		return m, nil

	case key.Matches(msg, m.keys.ViewDashboard):
		m.currentView = ViewDashboard
		m.showHelp = false
		return m, nil

	case key.Matches(msg, m.keys.ViewControl):
		m.currentView = ViewControl
		m.showHelp = false
		return m, nil

	case key.Matches(msg, m.keys.ViewSchedule):
		m.currentView = ViewSchedule
		m.showHelp = false
		return m, nil

	case key.Matches(msg, m.keys.ViewMap):
		m.currentView = ViewMap
		m.showHelp = false
		return m, nil
	}

	if m.showHelp {
		if msg.String() == "esc" {
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}

	switch m.currentView {
	case ViewControl:
		return m.handleControlKey(msg)
	case ViewSchedule:
		return m.handleScheduleKey(msg)
	case ViewMap:
		return m.handleMapKey(msg)
	default:
		return m.handleDashboardKey(msg)
	}
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		return m, commandCmd(func() (robot.CommandAck, error) {
			return m.api.StartCleaning(m.ctx)
		})
	case key.Matches(msg, m.keys.Pause):
		return m, commandCmd(func() (robot.CommandAck, error) {
			return m.api.PauseCleaning(m.ctx)
		})
	case key.Matches(msg, m.keys.Dock):
		return m, commandCmd(func() (robot.CommandAck, error) {
			return m.api.ReturnToDock(m.ctx)
		})
	}
	return m, nil
}

func (m Model) handleControlKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Drive keys first; "d" steers right here instead of docking.
	if direction, ok := driveDirection(msg.String()); ok {
		return m, commandCmd(func() (robot.CommandAck, error) {
			return m.api.Drive(m.ctx, direction)
		})
	}

	switch {
	case msg.String() == "D":
		return m, commandCmd(func() (robot.CommandAck, error) {
			return m.api.ReturnToDock(m.ctx)
		})
	case key.Matches(msg, m.keys.Fan):
		m.fanSpeed = nextFanSpeed(m.fanSpeed)
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.Start):
		return m, commandCmd(func() (robot.CommandAck, error) {
			return m.api.StartCleaning(m.ctx)
		})
	case key.Matches(msg, m.keys.Pause):
		return m, commandCmd(func() (robot.CommandAck, error) {
			return m.api.PauseCleaning(m.ctx)
		})
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewDashboard
		return m, nil
	}
	return m, nil
}

// driveDirection maps control-view keys to firmware drive directions.
func driveDirection(keyStr string) (string, bool) {
	switch keyStr {
	case "w", "up":
		return robot.DriveForward, true
	case "s", "down":
		return robot.DriveBack, true
	case "a", "left":
		return robot.DriveLeft, true
	case "d", "right":
		return robot.DriveRight, true
	case "x":
		return robot.DriveStop, true
	default:
		return "", false
	}
}

func (m Model) handleScheduleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.scheduleIndex > 0 {
			m.scheduleIndex--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.scheduleIndex < len(m.snapshot.Schedule)-1 {
			m.scheduleIndex++
		}
		return m, nil
	case key.Matches(msg, m.keys.ToggleEntry):
		if len(m.snapshot.Schedule) == 0 {
			return m, nil
		}
		return m, toggleScheduleCmd(m.ctx, m.api, m.snapshot.Schedule, m.scheduleIndex)
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewDashboard
		return m, nil
	}
	return m, nil
}

func (m Model) handleMapKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	zones := m.mapView.State.Zones

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.zoneIndex > 0 {
			m.zoneIndex--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.zoneIndex < len(zones)-1 {
			m.zoneIndex++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if m.zoneIndex < len(zones) {
			m.mapStore.ToggleZone(zones[m.zoneIndex].ID)
			return m, readStoresCmd(m.store, m.mapStore)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if m.zoneIndex < len(zones) {
			m.mapStore.DeleteZone(zones[m.zoneIndex].ID)
			return m, readStoresCmd(m.store, m.mapStore)
		}
		return m, nil

	case key.Matches(msg, m.keys.AddZone):
		m.adding = true
		m.zoneName.SetValue("")
		m.zoneName.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Rescan):
		if m.scanner != nil {
			return m, scanCmd(m.ctx, m.scanner)
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.mapView.Selection.Active() {
			m.mapStore.ClearSelection()
			return m, readStoresCmd(m.store, m.mapStore)
		}
		m.currentView = ViewDashboard
		return m, nil
	}
	return m, nil
}

// handleAddZoneKey drives the new-zone name prompt.
func (m Model) handleAddZoneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.adding = false
		m.zoneName.Blur()
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.zoneName.Value())
		if name == "" {
			name = "New zone"
		}
		color := m.theme.ZoneColors[len(m.mapView.State.Zones)%len(m.theme.ZoneColors)]
		m.mapStore.AddZone(name, color, envmap.Rect{X: 40, Y: 40, Width: 20, Height: 20})
		m.adding = false
		m.zoneName.Blur()
		m.notice = "zone " + name + " added"
		return m, readStoresCmd(m.store, m.mapStore)
	}

	var cmd tea.Cmd
	m.zoneName, cmd = m.zoneName.Update(msg)
	return m, cmd
}

// savePrefs persists the current theme and fan speed. Failures are ignored;
// preferences are cosmetic.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, FanSpeed: m.fanSpeed})
}
