package robot

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Ensure Simulator implements API at compile time.
var _ API = (*Simulator)(nil)

// Simulator is an in-process stand-in for a real vacuum, used by demo mode.
// It keeps authoritative zone and schedule state in memory and serves it with
// synthetic latency and jitter. Every few map fetches it omits optional
// fields or fails outright so the rest of the application exercises its
// fall-back and error paths against realistic behavior.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand

	latency time.Duration

	state        string
	battery      int
	fanSpeed     string
	cleanedArea  float64
	cleanTimeSec int

	pose     PosePayload
	heading  float64
	zones    []ZonePayload
	cleaned  []RegionPayload
	schedule []ScheduleEntry

	mapFetches int
}

const (
	simLatency      = 350 * time.Millisecond
	simFailEvery    = 9 // every Nth map fetch fails
	simSparsePeriod = 5 // every Nth map fetch omits optional fields
)

// NewSimulator builds a simulator seeded with sample data. The same seed
// yields the same sequence of snapshots.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{
		rng:      rand.New(rand.NewSource(seed)),
		latency:  simLatency,
		state:    StateDocked,
		battery:  87,
		fanSpeed: FanStandard,
		pose:     PosePayload{X: 8, Y: 12},
		zones: []ZonePayload{
			{ID: "zone-living", Name: "Living Room", Color: "teal", X: 5, Y: 5, Width: 40, Height: 35},
			{ID: "zone-kitchen", Name: "Kitchen", Color: "amber", X: 50, Y: 5, Width: 30, Height: 25},
			{ID: "zone-hall", Name: "Hallway", Color: "violet", X: 5, Y: 45, Width: 60, Height: 15},
		},
		cleaned: []RegionPayload{
			{X: 5, Y: 5, Width: 18, Height: 12},
		},
		schedule: []ScheduleEntry{
			{ID: "sched-1", Days: []string{"Mon", "Wed", "Fri"}, StartTime: "09:30", FanSpeed: FanStandard, Enabled: true},
			{ID: "sched-2", Days: []string{"Sat"}, StartTime: "11:00", FanSpeed: FanTurbo, Enabled: false},
		},
	}
}

// FetchStatus returns the simulated robot status.
func (s *Simulator) FetchStatus(ctx context.Context) (*StatusResponse, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickLocked()
	return &StatusResponse{
		State:         s.state,
		Battery:       s.battery,
		FanSpeed:      s.fanSpeed,
		CleanedAreaM2: round1(s.cleanedArea),
		CleanTimeSec:  s.cleanTimeSec,
		Firmware:      "3.5.8-sim",
	}, nil
}

// FetchMap returns the simulated environment snapshot.
func (s *Simulator) FetchMap(ctx context.Context) (MapSnapshot, error) {
	if err := s.sleep(ctx); err != nil {
		return MapSnapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mapFetches++
	if s.mapFetches%simFailEvery == 0 {
		return MapSnapshot{}, fmt.Errorf("map service unavailable")
	}

	s.tickLocked()

	area := 42.0 + round1(s.cleanedArea/4)
	obstacles := 3 + len(s.cleaned)/2
	count := len(s.zones)
	zones := append([]ZonePayload(nil), s.zones...)
	regions := append([]RegionPayload(nil), s.cleaned...)
	pose := s.pose

	snap := MapSnapshot{
		Zones:         &zones,
		DetectedZones: &count,
		Timestamp:     time.Now().Format(time.RFC3339),
	}
	if s.mapFetches%simSparsePeriod != 0 {
		snap.MappedAreaM2 = &area
		snap.ObstacleCount = &obstacles
		snap.Pose = &pose
		snap.CleanedRegions = &regions
	}
	return snap, nil
}

// FetchSchedule returns the simulated schedule.
func (s *Simulator) FetchSchedule(ctx context.Context) ([]ScheduleEntry, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ScheduleEntry(nil), s.schedule...), nil
}

// UpdateSchedule replaces the matching entry.
func (s *Simulator) UpdateSchedule(ctx context.Context, entry ScheduleEntry) error {
	if err := s.sleep(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.schedule {
		if s.schedule[i].ID == entry.ID {
			s.schedule[i] = entry
			return nil
		}
	}
	return fmt.Errorf("schedule entry %q not found", entry.ID)
}

// StartCleaning switches the robot into cleaning mode.
func (s *Simulator) StartCleaning(ctx context.Context) (CommandAck, error) {
	return s.setState(ctx, StateCleaning, "cleaning started")
}

// PauseCleaning pauses the current run.
func (s *Simulator) PauseCleaning(ctx context.Context) (CommandAck, error) {
	return s.setState(ctx, StatePaused, "cleaning paused")
}

// ReturnToDock sends the robot home.
func (s *Simulator) ReturnToDock(ctx context.Context) (CommandAck, error) {
	return s.setState(ctx, StateReturning, "returning to dock")
}

// Drive nudges the robot pose in the given direction.
func (s *Simulator) Drive(ctx context.Context, direction string) (CommandAck, error) {
	if err := s.sleep(ctx); err != nil {
		return CommandAck{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	const step = 2.5
	switch direction {
	case DriveForward:
		s.pose.Y = clampPct(s.pose.Y - step)
	case DriveBack:
		s.pose.Y = clampPct(s.pose.Y + step)
	case DriveLeft:
		s.pose.X = clampPct(s.pose.X - step)
	case DriveRight:
		s.pose.X = clampPct(s.pose.X + step)
	case DriveStop:
		s.state = StateIdle
		return CommandAck{OK: true, Message: "stopped"}, nil
	default:
		return CommandAck{}, fmt.Errorf("unknown direction %q", direction)
	}
	s.state = StateManual
	return CommandAck{OK: true, Message: "moved " + direction}, nil
}

func (s *Simulator) setState(ctx context.Context, state, msg string) (CommandAck, error) {
	if err := s.sleep(ctx); err != nil {
		return CommandAck{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	return CommandAck{OK: true, Message: msg}, nil
}

// tickLocked advances the simulation one step.
func (s *Simulator) tickLocked() {
	switch s.state {
	case StateCleaning:
		s.heading += (s.rng.Float64() - 0.5) * 1.2
		s.pose.X = clampPct(s.pose.X + 3*math.Cos(s.heading))
		s.pose.Y = clampPct(s.pose.Y + 3*math.Sin(s.heading))
		s.cleanedArea += 0.4 + s.rng.Float64()*0.3
		s.cleanTimeSec += 2
		if s.battery > 5 {
			s.battery--
		} else {
			s.state = StateReturning
		}
		s.cleaned = append(s.cleaned, RegionPayload{
			X:      clampPct(s.pose.X - 2),
			Y:      clampPct(s.pose.Y - 2),
			Width:  4,
			Height: 4,
		})
	case StateReturning:
		s.pose.X = clampPct(s.pose.X * 0.8)
		s.pose.Y = clampPct(s.pose.Y * 0.8)
		if s.pose.X < 10 && s.pose.Y < 14 {
			s.state = StateDocked
		}
	case StateDocked:
		if s.battery < 100 {
			s.battery++
		}
	}
}

func (s *Simulator) sleep(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func clampPct(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
