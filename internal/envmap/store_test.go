package envmap

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func snapshotWith(zones ...Zone) Snapshot {
	return Snapshot{HasZones: true, Zones: zones, Timestamp: time.Now()}
}

func TestStore_DeleteSurvivesStaleSnapshot(t *testing.T) {
	// Scenario: two zones, user deletes z1, a slow fetch still reporting z1
	// completes afterwards. The delete must hold.
	s := NewStore()
	s.applySnapshot(snapshotWith(
		zone("z1", Rect{Width: 10, Height: 10}),
		zone("z2", Rect{X: 20, Width: 10, Height: 10}),
	))

	s.DeleteZone("z1")
	if s.View().State.HasZone("z1") {
		t.Fatal("z1 still present after local delete")
	}

	s.applySnapshot(snapshotWith(
		zone("z1", Rect{Width: 10, Height: 10}),
		zone("z2", Rect{X: 20, Width: 10, Height: 10}),
	))

	v := s.View()
	if v.State.HasZone("z1") {
		t.Fatal("stale snapshot resurrected deleted z1")
	}
	if !v.State.HasZone("z2") {
		t.Fatal("z2 lost")
	}
	if !reflect.DeepEqual(v.State.PendingDeletes, []string{"z1"}) {
		t.Fatalf("PendingDeletes = %v, want [z1]", v.State.PendingDeletes)
	}
}

func TestStore_VetoPrunedOnceRemoteCatchesUp(t *testing.T) {
	s := NewStore()
	s.applySnapshot(snapshotWith(
		zone("z1", Rect{Width: 10, Height: 10}),
		zone("z2", Rect{X: 20, Width: 10, Height: 10}),
	))
	s.DeleteZone("z1")

	// Remote has genuinely dropped z1 now.
	s.applySnapshot(snapshotWith(zone("z2", Rect{X: 20, Width: 10, Height: 10})))

	v := s.View()
	if len(v.State.PendingDeletes) != 0 {
		t.Fatalf("PendingDeletes = %v, want pruned", v.State.PendingDeletes)
	}
	if !v.State.HasZone("z2") || len(v.State.Zones) != 1 {
		t.Fatalf("zones = %#v, want [z2]", v.State.Zones)
	}
}

func TestStore_DeleteIdempotent(t *testing.T) {
	s := NewStore()
	s.applySnapshot(snapshotWith(
		zone("z1", Rect{Width: 10, Height: 10}),
		zone("z2", Rect{X: 20, Width: 10, Height: 10}),
	))

	s.DeleteZone("z1")
	once := s.View()
	s.DeleteZone("z1")
	twice := s.View()

	if !reflect.DeepEqual(once.State, twice.State) {
		t.Fatalf("second delete changed state:\nonce:  %#v\ntwice: %#v", once.State, twice.State)
	}
}

func TestStore_DeleteUnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	s.applySnapshot(snapshotWith(zone("z1", Rect{Width: 10, Height: 10})))

	before := s.View()
	s.DeleteZone("ghost")
	after := s.View()

	if !reflect.DeepEqual(before.State, after.State) {
		t.Fatal("deleting an unknown id changed state")
	}
}

func TestStore_DeletePendingAddLeavesNoVeto(t *testing.T) {
	s := NewStore()
	added := s.AddZone("Rug", "teal", Rect{X: 70, Y: 70, Width: 10, Height: 10})

	s.DeleteZone(added.ID)

	v := s.View()
	if v.State.HasZone(added.ID) {
		t.Fatal("pending add still present after delete")
	}
	if len(v.State.PendingDeletes) != 0 {
		t.Fatalf("PendingDeletes = %v, want none for an unconfirmed add", v.State.PendingDeletes)
	}
}

func TestStore_AddZoneConfirmedByLaterSnapshot(t *testing.T) {
	s := NewStore()
	added := s.AddZone("Rug", "teal", Rect{X: 70, Y: 70, Width: 10, Height: 10})

	if z, ok := s.View().State.ZoneByID(added.ID); !ok || !z.Pending {
		t.Fatalf("added zone = %#v, want present and pending", z)
	}

	// Remote confirms under its own id.
	s.applySnapshot(snapshotWith(Zone{ID: "zone-9", Name: "Rug", Rect: Rect{X: 70, Y: 70, Width: 10, Height: 10}}))

	v := s.View()
	if v.State.HasZone(added.ID) {
		t.Fatal("local pending id survived confirmation")
	}
	z, ok := v.State.ZoneByID("zone-9")
	if !ok || z.Pending {
		t.Fatalf("confirmed zone = %#v, want present and not pending", z)
	}
}

func TestStore_SelectionClearedWhenZoneDisappears(t *testing.T) {
	// Scenario: select z1, then a snapshot arrives without it.
	s := NewStore()
	s.applySnapshot(snapshotWith(zone("z1", Rect{Width: 10, Height: 10})))

	s.SelectZone("z1")
	if got := s.View().Selection.ZoneID; got != "z1" {
		t.Fatalf("selection = %q, want z1", got)
	}

	s.applySnapshot(snapshotWith())

	v := s.View()
	if v.Selection.Active() {
		t.Fatalf("selection = %q, want cleared", v.Selection.ZoneID)
	}
	if len(v.State.Zones) != 0 {
		t.Fatalf("zones = %#v, want empty", v.State.Zones)
	}
}

func TestStore_SelectionClearedByDelete(t *testing.T) {
	s := NewStore()
	s.applySnapshot(snapshotWith(zone("z1", Rect{Width: 10, Height: 10})))

	s.SelectZone("z1")
	s.DeleteZone("z1")

	if sel := s.View().Selection; sel.Active() {
		t.Fatalf("selection = %q, want cleared after delete", sel.ZoneID)
	}
}

func TestStore_ToggleSymmetry(t *testing.T) {
	s := NewStore()
	s.applySnapshot(snapshotWith(zone("z1", Rect{Width: 10, Height: 10})))

	s.ToggleZone("z1")
	if got := s.View().Selection.ZoneID; got != "z1" {
		t.Fatalf("after first toggle selection = %q, want z1", got)
	}
	s.ToggleZone("z1")
	if sel := s.View().Selection; sel.Active() {
		t.Fatalf("after second toggle selection = %q, want cleared", sel.ZoneID)
	}
}

func TestStore_SelectUnknownIDIgnored(t *testing.T) {
	s := NewStore()
	s.applySnapshot(snapshotWith(zone("z1", Rect{Width: 10, Height: 10})))

	s.SelectZone("ghost")
	if sel := s.View().Selection; sel.Active() {
		t.Fatalf("selection = %q, want none", sel.ZoneID)
	}
}

func TestStore_FailScanKeepsState(t *testing.T) {
	s := NewStore()
	s.applySnapshot(snapshotWith(zone("z1", Rect{Width: 10, Height: 10})))
	before := s.View()

	s.failScan(errors.New("map service unavailable"))

	v := s.View()
	if !reflect.DeepEqual(before.State, v.State) {
		t.Fatal("failed scan mutated state")
	}
	if v.LastError == nil || v.LastError.Error() != "map service unavailable" {
		t.Fatalf("LastError = %v, want surfaced failure", v.LastError)
	}
	if v.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", v.ConsecutiveFailures)
	}
	if v.IsOffline() {
		t.Fatal("IsOffline after a single failure")
	}

	s.failScan(errors.New("still down"))
	if !s.View().IsOffline() {
		t.Fatal("IsOffline = false after two consecutive failures")
	}

	// A success clears the notice and the counter.
	s.applySnapshot(snapshotWith(zone("z1", Rect{Width: 10, Height: 10})))
	v = s.View()
	if v.LastError != nil || v.ConsecutiveFailures != 0 {
		t.Fatalf("after success: err=%v failures=%d, want reset", v.LastError, v.ConsecutiveFailures)
	}
}

func TestStore_ViewIsDefensiveCopy(t *testing.T) {
	s := NewStore()
	s.applySnapshot(snapshotWith(zone("z1", Rect{Width: 10, Height: 10})))

	v := s.View()
	v.State.Zones[0].ID = "mutated"

	if got := s.View().State.Zones[0].ID; got != "z1" {
		t.Fatalf("View exposed internal state; zone id = %q", got)
	}
}

func TestStore_EditDuringScanSurvivesThatScansMerge(t *testing.T) {
	// An edit issued between beginScan and applySnapshot lands in the
	// journal and is honored by the in-flight scan's reconciliation.
	s := NewStore()
	s.applySnapshot(snapshotWith(
		zone("z1", Rect{Width: 10, Height: 10}),
		zone("z2", Rect{X: 20, Width: 10, Height: 10}),
	))

	if err := s.beginScan(); err != nil {
		t.Fatalf("beginScan: %v", err)
	}
	s.DeleteZone("z1")
	s.applySnapshot(snapshotWith(
		zone("z1", Rect{Width: 10, Height: 10}),
		zone("z2", Rect{X: 20, Width: 10, Height: 10}),
	))

	if s.View().State.HasZone("z1") {
		t.Fatal("delete issued mid-scan was lost")
	}
}
