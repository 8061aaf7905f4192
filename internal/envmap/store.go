package envmap

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrScanInFlight is returned when a scan is requested while one is already
// running. The second request is rejected, not queued, so at most one merge
// can race the journal.
var ErrScanInFlight = errors.New("scan already in progress")

// Store owns the map state, journal, and selection for one session; nothing
// is persisted. The view layer reads it only through View and mutates it only
// through the command methods.
type Store struct {
	mu       sync.RWMutex
	state    MapState
	journal  *Journal
	sel      SelectionController
	scanning bool

	lastErr  error
	failures int
}

// NewStore returns an empty store ready for the first scan.
func NewStore() *Store {
	return &Store{journal: NewJournal()}
}

// View is a read-only copy of everything the map screen renders from.
type View struct {
	State               MapState
	Selection           Selection
	Scanning            bool
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when scans have failed repeatedly in a row.
func (v View) IsOffline() bool {
	return v.ConsecutiveFailures >= 2
}

// View returns a defensive copy of the current store contents.
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := View{
		State:               s.state.clone(),
		Selection:           s.sel.Current(),
		Scanning:            s.scanning,
		ConsecutiveFailures: s.failures,
	}
	if s.lastErr != nil {
		v.LastError = fmt.Errorf("%w", s.lastErr)
	}
	return v
}

// beginScan flips the busy flag, rejecting re-entrant scans.
func (s *Store) beginScan() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scanning {
		return ErrScanInFlight
	}
	s.scanning = true
	return nil
}

// applySnapshot runs one reconciliation. Edits issued while the scan was in
// flight are already in the journal, so they survive the merge.
func (s *Store) applySnapshot(in Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Timestamp.IsZero() {
		in.Timestamp = time.Now()
	}
	s.journal.Observe(in)
	s.state = Reconcile(s.state, in, s.journal)
	s.sel.OnStateChanged(s.state)
	s.scanning = false
	s.lastErr = nil
	s.failures = 0
}

// failScan records a fetch failure. The state is left untouched; the error
// is surfaced once through the next View.
func (s *Store) failScan(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanning = false
	s.lastErr = err
	s.failures++
}

// DeleteZone removes the zone locally and vetoes its id against future
// snapshots. Deleting an unknown id is a no-op; deleting a pending local add
// just drops it, since the remote never knew about it. Idempotent.
func (s *Store) DeleteZone(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	zone, ok := s.state.ZoneByID(id)
	if !ok {
		return
	}
	if zone.Pending {
		s.journal.DropAdd(id)
	} else {
		s.journal.RecordDelete(id)
	}
	s.state.Zones = removeZone(s.state.Zones, id)
	s.state.PendingDeletes = s.journal.DeletedIDs()
	s.sel.OnStateChanged(s.state)
}

// AddZone creates a local zone pending remote confirmation and returns it.
func (s *Store) AddZone(name, color string, r Rect) Zone {
	s.mu.Lock()
	defer s.mu.Unlock()

	zone := Zone{
		ID:      "local-" + uuid.NewString(),
		Name:    name,
		Color:   color,
		Rect:    r.Clamp(),
		Pending: true,
	}
	s.journal.RecordAdd(zone)
	s.state.Zones = append(s.state.Zones, zone)
	return zone
}

// SelectZone makes the zone active. Unknown ids are ignored.
func (s *Store) SelectZone(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Select(id, s.state)
}

// ToggleZone selects the zone, or clears the selection if it was already
// selected.
func (s *Store) ToggleZone(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Toggle(id, s.state)
}

// ClearSelection drops any active selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Clear()
}

func removeZone(zones []Zone, id string) []Zone {
	for i, z := range zones {
		if z.ID == id {
			return append(zones[:i], zones[i+1:]...)
		}
	}
	return zones
}
