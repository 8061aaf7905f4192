package envmap

import "testing"

func TestSelectionController_SelectAndToggle(t *testing.T) {
	state := MapState{Zones: []Zone{zone("z1", Rect{Width: 10, Height: 10})}}
	var c SelectionController

	c.Select("z1", state)
	if got := c.Current().ZoneID; got != "z1" {
		t.Fatalf("selection = %q, want z1", got)
	}

	c.Toggle("z1", state)
	if c.Current().Active() {
		t.Fatal("toggle of selected zone did not clear selection")
	}

	c.Toggle("z1", state)
	if got := c.Current().ZoneID; got != "z1" {
		t.Fatalf("toggle of unselected zone = %q, want z1", got)
	}
}

func TestSelectionController_SelectMissingZoneIsNoop(t *testing.T) {
	state := MapState{Zones: []Zone{zone("z1", Rect{Width: 10, Height: 10})}}
	var c SelectionController

	c.Select("z1", state)
	c.Select("ghost", state)
	if got := c.Current().ZoneID; got != "z1" {
		t.Fatalf("selection = %q, want z1 untouched", got)
	}
}

func TestSelectionController_OnStateChangedClearsDangling(t *testing.T) {
	state := MapState{Zones: []Zone{zone("z1", Rect{Width: 10, Height: 10})}}
	var c SelectionController
	c.Select("z1", state)

	c.OnStateChanged(MapState{})
	if c.Current().Active() {
		t.Fatal("dangling selection survived state change")
	}

	// Untouched when the zone is still present.
	c.Select("z1", state)
	c.OnStateChanged(state)
	if got := c.Current().ZoneID; got != "z1" {
		t.Fatalf("selection = %q, want z1 retained", got)
	}
}
