package envmap

import (
	"time"
)

// Rect is an axis-aligned rectangle in percentage units of the map bounds.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Clamp forces the rect into [0,100] with X+Width <= 100 and Y+Height <= 100.
// Telemetry is untrusted, so out-of-range values are pulled into range rather
// than rejected.
func (r Rect) Clamp() Rect {
	r.X = clamp(r.X, 0, 100)
	r.Y = clamp(r.Y, 0, 100)
	r.Width = clamp(r.Width, 0, 100-r.X)
	r.Height = clamp(r.Height, 0, 100-r.Y)
	return r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Zone is one detected or user-created region of the environment map.
// Identity is the ID; everything else is replaceable by a newer snapshot.
type Zone struct {
	ID    string
	Name  string
	Color string
	Rect  Rect

	// Pending marks a locally added zone the remote has not confirmed yet.
	Pending bool
}

// CleanedRegion is display-only coverage data with no identity. The full set
// is replaced on every snapshot merge.
type CleanedRegion struct {
	Rect Rect
}

// Pose is the robot's position in percentage coordinates.
type Pose struct {
	X float64
	Y float64
}

// MapState is the root aggregate the map screen renders from. It is mutated
// only through reconciliation and the store's local edit commands.
type MapState struct {
	Zones          []Zone
	CleanedRegions []CleanedRegion
	Pose           Pose
	MappedAreaM2   float64
	ObstacleCount  int
	LastUpdated    time.Time

	// PendingDeletes lists zone ids deleted locally that the remote still
	// reported last time we heard from it. None of them appear in Zones.
	PendingDeletes []string
}

// HasZone reports whether a zone with the given id is present.
func (s MapState) HasZone(id string) bool {
	_, ok := s.ZoneByID(id)
	return ok
}

// ZoneByID returns the zone with the given id.
func (s MapState) ZoneByID(id string) (Zone, bool) {
	for _, z := range s.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}

func cloneZones(zones []Zone) []Zone {
	if len(zones) == 0 {
		return nil
	}
	dup := make([]Zone, len(zones))
	copy(dup, zones)
	return dup
}

func cloneRegions(regions []CleanedRegion) []CleanedRegion {
	if len(regions) == 0 {
		return nil
	}
	dup := make([]CleanedRegion, len(regions))
	copy(dup, regions)
	return dup
}

func cloneIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	dup := make([]string, len(ids))
	copy(dup, ids)
	return dup
}

func (s MapState) clone() MapState {
	s.Zones = cloneZones(s.Zones)
	s.CleanedRegions = cloneRegions(s.CleanedRegions)
	s.PendingDeletes = cloneIDs(s.PendingDeletes)
	return s
}
