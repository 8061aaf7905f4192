// Package ui provides the terminal user interface for the vacmate application.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program: a single root Model holds all view state,
// Update handles typed messages, and View renders the active screen. The UI
// never talks to the robot stores directly from render code; it reads
// immutable snapshots delivered by messages.
//
// # Package Structure
//
//   - app.go: Root Model, Update loop, layout composition, and Run
//   - msgs.go: Message types and the commands that produce them
//   - input.go: Key routing per view
//   - header.go: Status bar and command hint bar
//   - dashboard.go, control.go, schedule.go, mapview.go: The four screens
//   - theme.go: Named color themes and pre-built lipgloss styles
//
// # View Types
//
//   - Dashboard: Robot state, battery, cleaning stats, map summary
//   - Control: Manual drive pad, fan speed, cleaning commands
//   - Schedule: Cleaning schedule list with enable/disable toggle
//   - Map: Rendered environment map with zone list and zone editing
//
// # Event Flow
//
//  1. Run() starts the Bubble Tea program with the root Model
//  2. tickMsg fires every poll interval and triggers readStoresCmd
//  3. storesMsg delivers defensive-copy snapshots from state.Store and
//     envmap.Store into the Model
//  4. Key presses dispatch robot commands or local map edits; each async
//     result arrives as its own typed message (ackMsg, scanDoneMsg,
//     scheduleSavedMsg)
//  5. Context cancellation kills the program cleanly
//
// Map edits go through envmap.Store so the edit journal can replay them over
// later telemetry snapshots; the UI never mutates map state it renders.
//
// # Key Bindings
//
//   - 1/2/3/4: Switch to dashboard/control/schedule/map
//   - Tab / Shift+Tab: Cycle views
//   - c/p/d: Start cleaning, pause, return to dock
//   - w/a/s/d, x: Manual drive and stop (control view)
//   - f: Cycle fan speed
//   - j/k: Navigate lists
//   - enter: Toggle zone selection (map view)
//   - x: Delete highlighted zone (map view)
//   - a: Add a zone (map view)
//   - s: Rescan the map (map view)
//   - Space: Toggle schedule entry
//   - T: Cycle theme
//   - h/?: Help
//   - q or Ctrl+C: Quit
package ui
