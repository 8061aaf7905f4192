package envmap

import (
	"testing"
)

func TestJournal_RecordDeleteIdempotent(t *testing.T) {
	j := NewJournal()
	j.RecordDelete("z1")
	j.RecordDelete("z1")

	if got := j.DeletedIDs(); len(got) != 1 || got[0] != "z1" {
		t.Fatalf("DeletedIDs = %v, want [z1]", got)
	}
	if !j.IsDeleted("z1") {
		t.Fatal("IsDeleted(z1) = false")
	}
	if j.IsDeleted("z2") {
		t.Fatal("IsDeleted(z2) = true, never recorded")
	}
}

func TestJournal_ObservePrunesCaughtUpDeletes(t *testing.T) {
	j := NewJournal()
	j.RecordDelete("z1")
	j.RecordDelete("z2")

	// Remote still reports z1 but has dropped z2: only z2's veto is spent.
	j.Observe(Snapshot{HasZones: true, Zones: []Zone{zone("z1", Rect{Width: 5, Height: 5})}})

	if !j.IsDeleted("z1") {
		t.Fatal("veto for z1 pruned while remote still reports it")
	}
	if j.IsDeleted("z2") {
		t.Fatal("veto for z2 retained after remote caught up")
	}
}

func TestJournal_ObserveIgnoresSparseSnapshot(t *testing.T) {
	j := NewJournal()
	j.RecordDelete("z1")
	j.RecordAdd(Zone{ID: "local-1", Rect: Rect{Width: 5, Height: 5}})

	// A snapshot without a zones field says nothing about zones.
	j.Observe(Snapshot{})

	if !j.IsDeleted("z1") {
		t.Fatal("veto pruned by a snapshot that omitted zones")
	}
	if len(j.PendingAdds()) != 1 {
		t.Fatal("pending add dropped by a snapshot that omitted zones")
	}
}

func TestJournal_ObserveConfirmsMatchingAdd(t *testing.T) {
	j := NewJournal()
	j.RecordAdd(Zone{ID: "local-1", Rect: Rect{X: 70, Y: 70, Width: 10, Height: 10}})

	tests := []struct {
		name      string
		remote    Rect
		confirmed bool
	}{
		{"exact match", Rect{X: 70, Y: 70, Width: 10, Height: 10}, true},
		{"sub-percent drift", Rect{X: 70.4, Y: 69.6, Width: 10.2, Height: 9.8}, true},
		{"off by a percent", Rect{X: 72, Y: 70, Width: 10, Height: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewJournal()
			j.RecordAdd(Zone{ID: "local-1", Rect: Rect{X: 70, Y: 70, Width: 10, Height: 10}})
			j.Observe(Snapshot{HasZones: true, Zones: []Zone{zone("zone-9", tt.remote)}})

			remaining := len(j.PendingAdds())
			if tt.confirmed && remaining != 0 {
				t.Fatalf("pending adds = %d, want 0 (confirmed)", remaining)
			}
			if !tt.confirmed && remaining != 1 {
				t.Fatalf("pending adds = %d, want 1 (unconfirmed)", remaining)
			}
		})
	}
}

func TestJournal_DropAdd(t *testing.T) {
	j := NewJournal()
	j.RecordAdd(Zone{ID: "local-1", Rect: Rect{Width: 5, Height: 5}})

	if !j.DropAdd("local-1") {
		t.Fatal("DropAdd(local-1) = false, want true")
	}
	if j.DropAdd("local-1") {
		t.Fatal("second DropAdd(local-1) = true, want false")
	}
	if len(j.PendingAdds()) != 0 {
		t.Fatalf("pending adds = %v, want empty", j.PendingAdds())
	}
	// Dropping a pending add leaves no veto behind.
	if j.IsDeleted("local-1") {
		t.Fatal("DropAdd left a veto entry")
	}
}

func TestJournal_PendingAddsIsACopy(t *testing.T) {
	j := NewJournal()
	j.RecordAdd(Zone{ID: "local-1", Rect: Rect{Width: 5, Height: 5}})

	adds := j.PendingAdds()
	adds[0].ID = "mutated"

	if j.PendingAdds()[0].ID != "local-1" {
		t.Fatal("PendingAdds exposed internal slice")
	}
}
