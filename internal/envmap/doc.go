// Package envmap manages the environment map state for the map screen: a
// snapshot-reconciliation store for a polled, partially-authoritative remote
// source with local optimistic edits.
//
// # Overview
//
// The robot periodically reports a map snapshot: detected zones, cleaned
// regions, its own pose, and derived stats. The user meanwhile edits the
// same data locally, deleting zones, adding new ones, and selecting one for
// commands. Because the remote source lags behind local edits, a naive
// "replace on fetch" store resurrects deleted zones and discards unsaved
// adds. This package keeps both sides honest.
//
// # Architecture
//
//	Coordinator ──fetch──▶ Source (robot.Client / robot.Simulator)
//	     │
//	     ▼ snapshot
//	Journal.Observe ──▶ Reconcile(state, snapshot, journal) ──▶ MapState
//	                                                              │
//	                              SelectionController.OnStateChanged
//	                                                              │
//	                                          Derive ──▶ view aggregates
//
// # Merge policy
//
// The snapshot wins for every field it supplies; the journal wins for
// identity:
//
//   - A zone id the user deleted is excluded from the merge even when the
//     snapshot still reports it. The veto lives until a snapshot no longer
//     mentions the id, at which point it is pruned.
//   - A locally added zone rides along as pending until a snapshot reports a
//     zone with the same bounds (whole-percent match), which confirms it; the
//     remote entry then replaces the local one under its own id.
//   - Fields the snapshot omits keep their previous values, so a sparse
//     payload never resets stats or pose to zero.
//   - Cleaned regions and pose are replaced wholesale; they are telemetry,
//     not user-owned entities.
//   - The zone count is derived from the merged slice. The payload carries
//     its own count field, and it is never trusted.
//
// Rect values arrive from untrusted telemetry and are clamped into [0,100]
// rather than rejected.
//
// # Concurrency Model
//
// Scans run on background goroutines, so the Store guards its contents with
// a sync.RWMutex and hands out defensive copies, the same shape as a poller
// feeding a UI refresh loop. Reconciliations are additionally serialized by
// the scanning flag: a scan requested while one is in flight gets
// ErrScanInFlight instead of queueing, so at most one merge can ever race
// the journal. Edits issued during a scan land in the journal and are
// honored by that scan's reconciliation.
//
// # Error Handling
//
// Nothing here is fatal. A failed fetch keeps the previous state and records
// the error for a single transient notice; repeated failures flip
// View.IsOffline. Deleting or selecting an unknown id is a no-op. Malformed
// rects are clamped silently.
//
// # Lifecycle
//
// NewStore gives an empty store; the first successful scan populates it.
// The store lives for one map-screen session and is garbage once the screen
// is left. Persistence is deliberately out of scope.
package envmap
