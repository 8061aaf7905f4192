package envmap

import (
	"time"

	"vacmate/internal/robot"
)

// Snapshot is one fetched telemetry payload, normalized from the wire type.
// Has* flags and pointers distinguish fields the source omitted; an absent
// field falls back to the previous state's value during reconciliation
// instead of resetting to zero.
type Snapshot struct {
	Zones    []Zone
	HasZones bool

	CleanedRegions    []CleanedRegion
	HasCleanedRegions bool

	Pose          *Pose
	MappedAreaM2  *float64
	ObstacleCount *int
	Timestamp     time.Time
}

// SnapshotFromPayload converts the wire payload into a Snapshot. The
// payload's own detectedZones count is deliberately ignored: the zone count
// is always derived from the merged slice, so a count/array divergence
// upstream cannot leak into the UI.
func SnapshotFromPayload(p robot.MapSnapshot) Snapshot {
	snap := Snapshot{
		MappedAreaM2:  p.MappedAreaM2,
		ObstacleCount: p.ObstacleCount,
		Timestamp:     p.ParsedTimestamp(),
	}
	if p.Pose != nil {
		snap.Pose = &Pose{X: p.Pose.X, Y: p.Pose.Y}
	}
	if p.Zones != nil {
		snap.HasZones = true
		snap.Zones = make([]Zone, 0, len(*p.Zones))
		for _, z := range *p.Zones {
			snap.Zones = append(snap.Zones, Zone{
				ID:    z.ID,
				Name:  z.Name,
				Color: z.Color,
				Rect:  Rect{X: z.X, Y: z.Y, Width: z.Width, Height: z.Height},
			})
		}
	}
	if p.CleanedRegions != nil {
		snap.HasCleanedRegions = true
		snap.CleanedRegions = make([]CleanedRegion, 0, len(*p.CleanedRegions))
		for _, r := range *p.CleanedRegions {
			snap.CleanedRegions = append(snap.CleanedRegions, CleanedRegion{
				Rect: Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height},
			})
		}
	}
	return snap
}

// containsZone reports whether the snapshot itself mentions the zone id.
func (s Snapshot) containsZone(id string) bool {
	for _, z := range s.Zones {
		if z.ID == id {
			return true
		}
	}
	return false
}
