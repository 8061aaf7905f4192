package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding

	// View switching
	ViewDashboard key.Binding
	ViewControl   key.Binding
	ViewSchedule  key.Binding
	ViewMap       key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding

	// Robot commands
	Start key.Binding
	Pause key.Binding
	Dock  key.Binding
	Fan   key.Binding

	// Manual drive
	DriveForward key.Binding
	DriveBack    key.Binding
	DriveLeft    key.Binding
	DriveRight   key.Binding
	DriveStop    key.Binding

	// Schedule actions
	ToggleEntry key.Binding

	// Map actions
	Select  key.Binding
	Delete  key.Binding
	AddZone key.Binding
	Rescan  key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle views"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Cycle views (reverse)"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel / dashboard"),
		),

		// View switching
		ViewDashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Dashboard"),
		),
		ViewControl: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Control"),
		),
		ViewSchedule: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Schedule"),
		),
		ViewMap: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Map"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),

		// Robot commands
		Start: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Start cleaning"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Pause"),
		),
		Dock: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Return to dock"),
		),
		Fan: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle fan speed"),
		),

		// Manual drive (control view)
		DriveForward: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Forward"),
		),
		DriveBack: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Back"),
		),
		DriveLeft: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Left"),
		),
		DriveRight: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Right"),
		),
		DriveStop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Stop"),
		),

		// Schedule actions
		ToggleEntry: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle entry"),
		),

		// Map actions
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Select zone"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Delete zone"),
		),
		AddZone: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add zone"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Rescan map"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ViewDashboard, k.ViewControl, k.ViewSchedule, k.ViewMap},
		{k.Up, k.Down},
		{k.Start, k.Pause, k.Dock, k.Fan},
		{k.Select, k.Delete, k.AddZone, k.Rescan},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
