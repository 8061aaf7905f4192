package envmap

// Reconcile merges an incoming snapshot into the current state under the
// journal's constraints and returns the next state. It is a pure function of
// its three inputs: the journal is read, never mutated (the store calls
// Journal.Observe separately, before the merge).
//
// Merge policy: the snapshot wins for every field it supplies, the journal
// wins for identity. A vetoed id is excluded even if the snapshot still
// reports it, which protects a user delete against a stale fetch racing the
// remote. Pending local adds are retained unless a remote zone already covers
// the same bounds. Fields the snapshot omits keep their current values.
func Reconcile(current MapState, in Snapshot, journal *Journal) MapState {
	next := current.clone()

	if in.HasZones {
		next.Zones = mergeZones(in.Zones, journal)
	} else {
		next.Zones = dropVetoed(next.Zones, journal)
	}

	if in.HasCleanedRegions {
		next.CleanedRegions = clampRegions(in.CleanedRegions)
	}
	if in.Pose != nil {
		next.Pose = *in.Pose
	}
	if in.MappedAreaM2 != nil {
		next.MappedAreaM2 = *in.MappedAreaM2
	}
	if in.ObstacleCount != nil {
		next.ObstacleCount = *in.ObstacleCount
	}
	if !in.Timestamp.IsZero() {
		next.LastUpdated = in.Timestamp
	}

	next.PendingDeletes = journal.DeletedIDs()
	return next
}

// mergeZones builds the zone slice from the snapshot's zones plus the
// journal's pending adds, applying vetoes and dropping duplicate ids
// (first occurrence wins).
func mergeZones(incoming []Zone, journal *Journal) []Zone {
	merged := make([]Zone, 0, len(incoming))
	seen := make(map[string]struct{}, len(incoming))

	for _, z := range incoming {
		if journal.IsDeleted(z.ID) {
			continue
		}
		if _, dup := seen[z.ID]; dup {
			continue
		}
		z.Rect = z.Rect.Clamp()
		z.Pending = false
		seen[z.ID] = struct{}{}
		merged = append(merged, z)
	}

	for _, pending := range journal.PendingAdds() {
		if _, dup := seen[pending.ID]; dup {
			continue
		}
		if confirmedBy(pending, merged) {
			// Remote already reports a zone with these bounds; keep the
			// remote entry rather than duplicating it.
			continue
		}
		seen[pending.ID] = struct{}{}
		merged = append(merged, pending)
	}

	if len(merged) == 0 {
		return nil
	}
	return merged
}

func dropVetoed(zones []Zone, journal *Journal) []Zone {
	kept := make([]Zone, 0, len(zones))
	for _, z := range zones {
		if !journal.IsDeleted(z.ID) {
			kept = append(kept, z)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

func clampRegions(regions []CleanedRegion) []CleanedRegion {
	if len(regions) == 0 {
		return nil
	}
	out := make([]CleanedRegion, len(regions))
	for i, r := range regions {
		out[i] = CleanedRegion{Rect: r.Rect.Clamp()}
	}
	return out
}
