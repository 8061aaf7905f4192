// Package app provides the orchestration layer for the vacmate application.
//
// # Overview
//
// This package wires together configuration, polling, state management, and
// the UI. It is the composition root where all dependencies are initialized
// and connected.
//
//  1. Load configuration from ~/.config/vacmate/config.toml
//  2. Build the robot API client, or the simulator in demo mode
//  3. Create the shared state.Store and the envmap store + scan coordinator
//  4. Launch the background poller goroutine
//  5. Start the TUI and block until the user exits or the context cancels
//
// # Polling
//
// One goroutine drives all background refreshes: status and schedule go into
// state.Store, and each cycle also kicks a map scan through the envmap
// coordinator. Manual scans triggered from the UI share the same coordinator,
// so an in-flight scan simply makes the poller skip that cycle. Consecutive
// failures grow the poll interval exponentially up to a cap, so a robot that
// is off or out of range is not hammered.
package app
