package envmap

import (
	"math"
	"sort"
)

// Journal records local-only edits applied since the last snapshot so a
// subsequent fetch cannot silently resurrect a deleted zone or discard an
// unconfirmed local add.
//
// A deleted id is retained as a veto until a snapshot itself no longer
// reports that zone; at that point the remote has caught up and the entry is
// pruned. A locally added zone stays pending until a snapshot reports a zone
// with matching bounds, which is treated as confirmation: the pending entry
// is dropped and the remote zone takes over under its own id.
type Journal struct {
	deleted map[string]struct{}
	added   []Zone
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{deleted: make(map[string]struct{})}
}

// RecordDelete vetoes the zone id against future snapshots. Idempotent.
func (j *Journal) RecordDelete(id string) {
	if id == "" {
		return
	}
	j.deleted[id] = struct{}{}
}

// RecordAdd registers a locally created zone awaiting remote confirmation.
func (j *Journal) RecordAdd(z Zone) {
	z.Pending = true
	z.Rect = z.Rect.Clamp()
	j.added = append(j.added, z)
}

// DropAdd removes a pending add, returning true if it was present. A pending
// zone deleted before any snapshot confirms it never reached the remote's
// authority, so no veto entry is needed.
func (j *Journal) DropAdd(id string) bool {
	for i, z := range j.added {
		if z.ID == id {
			j.added = append(j.added[:i], j.added[i+1:]...)
			return true
		}
	}
	return false
}

// IsDeleted reports whether the id is vetoed.
func (j *Journal) IsDeleted(id string) bool {
	_, ok := j.deleted[id]
	return ok
}

// DeletedIDs returns the vetoed ids in sorted order.
func (j *Journal) DeletedIDs() []string {
	if len(j.deleted) == 0 {
		return nil
	}
	ids := make([]string, 0, len(j.deleted))
	for id := range j.deleted {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PendingAdds returns a copy of the unconfirmed local zones.
func (j *Journal) PendingAdds() []Zone {
	return cloneZones(j.added)
}

// Observe updates the journal against an incoming snapshot before it is
// merged: vetoes for ids the remote no longer reports are pruned (the veto
// has served its purpose), and pending adds matched by a remote zone are
// dropped as confirmed. A snapshot that omits zones says nothing about them,
// so the journal is left untouched.
func (j *Journal) Observe(in Snapshot) {
	if !in.HasZones {
		return
	}
	for id := range j.deleted {
		if !in.containsZone(id) {
			delete(j.deleted, id)
		}
	}
	if len(j.added) == 0 {
		return
	}
	kept := j.added[:0]
	for _, pending := range j.added {
		if !confirmedBy(pending, in.Zones) {
			kept = append(kept, pending)
		}
	}
	j.added = kept
}

// confirmedBy reports whether a remote zone matches the pending zone's
// bounds. Rects match when all components round to the same whole percent.
func confirmedBy(pending Zone, remote []Zone) bool {
	for _, z := range remote {
		if sameWholePercent(pending.Rect, z.Rect.Clamp()) {
			return true
		}
	}
	return false
}

func sameWholePercent(a, b Rect) bool {
	return math.Round(a.X) == math.Round(b.X) &&
		math.Round(a.Y) == math.Round(b.Y) &&
		math.Round(a.Width) == math.Round(b.Width) &&
		math.Round(a.Height) == math.Round(b.Height)
}
