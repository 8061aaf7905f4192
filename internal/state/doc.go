// Package state provides thread-safe state management for device status and
// schedule data.
//
// # Overview
//
// This package implements a simple store for sharing robot status and
// schedule data between the background poller and the UI. It is the
// coordination point where polling updates meet rendering. The environment
// map has richer semantics (reconciliation, journaling, selection) and lives
// in its own package, envmap; this store covers everything else the screens
// display.
//
// # Architecture
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ FetchStatus()  │            │                 │
//	│ FetchSchedule()│            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────▶│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │  render UI      │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
//	// Success case: replace the snapshot
//	store.Update(status, schedule, nil)
//
//	// Error case: keep old data, record the error
//	store.Update(nil, nil, err)
//
// On error the UI keeps showing the most recent successful data while the
// header reports the failure; ConsecutiveFailures drives the OFFLINE badge
// once the robot has missed two polls in a row.
//
// # Concurrency Model
//
// A readers-writer lock with defensive copies on both sides: Update clones
// the schedule slice in, Snapshot clones it out, and error values are
// wrapped rather than shared. The lock is held only for the copy, never
// during network I/O or rendering.
//
// # Testing Considerations
//
// The zero-value Store is ready to use: no initialization, thread-safe from
// first use, and Snapshot() returns a zero Snapshot before the first Update.
package state
