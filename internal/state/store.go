package state

import (
	"fmt"
	"sync"
	"time"

	"vacmate/internal/robot"
)

// Snapshot represents the latest device data available to the UI.
type Snapshot struct {
	Status              robot.StatusResponse
	HasStatus           bool
	Schedule            []robot.ScheduleEntry
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the robot has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(status *robot.StatusResponse, schedule []robot.ScheduleEntry, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Schedule = cloneSchedule(schedule)
	if status != nil {
		s.snapshot.Status = *status
		s.snapshot.HasStatus = true
	} else {
		s.snapshot.HasStatus = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// SetSchedule replaces only the schedule, keeping status and error state.
// Used after a local schedule edit round-trips to the robot.
func (s *Store) SetSchedule(schedule []robot.ScheduleEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Schedule = cloneSchedule(schedule)
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Schedule = cloneSchedule(s.snapshot.Schedule)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneSchedule(entries []robot.ScheduleEntry) []robot.ScheduleEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]robot.ScheduleEntry, len(entries))
	copy(dup, entries)
	return dup
}
