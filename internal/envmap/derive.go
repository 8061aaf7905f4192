package envmap

import "time"

// Derived holds the renderable aggregates computed from a MapState. The zone
// count is always the length of the merged slice, never a count field read
// from a snapshot.
type Derived struct {
	MappedAreaM2  float64
	ObstacleCount int
	ZoneCount     int
	LastUpdated   time.Time
}

// Derive computes display aggregates. Pure; no side effects.
func Derive(state MapState) Derived {
	return Derived{
		MappedAreaM2:  state.MappedAreaM2,
		ObstacleCount: state.ObstacleCount,
		ZoneCount:     len(state.Zones),
		LastUpdated:   state.LastUpdated,
	}
}

// StaleAfter reports whether the data is older than the threshold. It reads
// the wall clock on every call rather than caching, so the "data may be
// outdated" indicator flips without a state change.
func (d Derived) StaleAfter(threshold time.Duration) bool {
	return d.staleAt(time.Now(), threshold)
}

func (d Derived) staleAt(now time.Time, threshold time.Duration) bool {
	if d.LastUpdated.IsZero() {
		return false
	}
	return now.Sub(d.LastUpdated) > threshold
}
