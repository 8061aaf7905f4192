package robot

import (
	"strings"
	"time"
)

const robotTimestampLayout = "2006-01-02 15:04:05"

// Robot cleaning states reported by /api/status.
const (
	StateDocked    = "docked"
	StateCleaning  = "cleaning"
	StatePaused    = "paused"
	StateReturning = "returning"
	StateManual    = "manual"
	StateError     = "error"
	StateIdle      = "idle"
)

// Fan speed settings accepted by the firmware.
const (
	FanQuiet    = "quiet"
	FanStandard = "standard"
	FanTurbo    = "turbo"
	FanMax      = "max"
)

// Manual drive directions accepted by /api/manual.
const (
	DriveForward = "forward"
	DriveBack    = "back"
	DriveLeft    = "left"
	DriveRight   = "right"
	DriveStop    = "stop"
)

// StatusResponse mirrors the payload returned by /api/status.
type StatusResponse struct {
	State         string  `json:"state"`
	Battery       int     `json:"battery"`
	FanSpeed      string  `json:"fanSpeed"`
	CleanedAreaM2 float64 `json:"cleanedAreaM2"`
	CleanTimeSec  int     `json:"cleanTimeSec"`
	Firmware      string  `json:"firmware"`
	Error         string  `json:"error"`
}

// Charging reports whether the robot is on the dock.
func (s StatusResponse) Charging() bool {
	return strings.EqualFold(s.State, StateDocked)
}

// ZonePayload describes one detected zone in map coordinates.
// All rect values are percentages of the map bounds.
type ZonePayload struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RegionPayload describes one cleaned region rectangle in map coordinates.
type RegionPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PosePayload is the robot's position in percentage coordinates.
type PosePayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MapSnapshot mirrors the payload returned by /api/map. Pointer fields
// distinguish "absent" from "present but zero"; the telemetry source is
// allowed to omit any of them.
type MapSnapshot struct {
	MappedAreaM2   *float64         `json:"mappedAreaM2,omitempty"`
	ObstacleCount  *int             `json:"obstacleCount,omitempty"`
	DetectedZones  *int             `json:"detectedZones,omitempty"`
	Zones          *[]ZonePayload   `json:"zones,omitempty"`
	Pose           *PosePayload     `json:"pose,omitempty"`
	CleanedRegions *[]RegionPayload `json:"cleanedRegions,omitempty"`
	Timestamp      string           `json:"timestamp,omitempty"`
}

// ParsedTimestamp parses the snapshot timestamp, returning the zero time on
// failure or absence.
func (m MapSnapshot) ParsedTimestamp() time.Time {
	trimmed := strings.TrimSpace(m.Timestamp)
	if trimmed == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return ts
	}
	if ts, err := time.ParseInLocation(robotTimestampLayout, trimmed, time.Local); err == nil {
		return ts
	}
	return time.Time{}
}

// ScheduleEntry is one row of the cleaning schedule.
type ScheduleEntry struct {
	ID        string   `json:"id"`
	Days      []string `json:"days"`
	StartTime string   `json:"startTime"`
	FanSpeed  string   `json:"fanSpeed"`
	Enabled   bool     `json:"enabled"`
}

// DaysLabel renders the day list for display, e.g. "Mon, Wed, Fri".
func (e ScheduleEntry) DaysLabel() string {
	if len(e.Days) == 7 {
		return "Every day"
	}
	if len(e.Days) == 0 {
		return "Never"
	}
	return strings.Join(e.Days, ", ")
}

// ScheduleListResponse mirrors the payload returned by /api/schedule.
type ScheduleListResponse struct {
	Entries []ScheduleEntry `json:"entries"`
}

// CommandAck is the response to cleaning and manual-drive commands.
type CommandAck struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
