package ui

import (
	"testing"

	"vacmate/internal/envmap"
)

func gridState() envmap.MapState {
	return envmap.MapState{
		Zones: []envmap.Zone{
			{ID: "z1", Name: "Kitchen", Rect: envmap.Rect{X: 0, Y: 0, Width: 20, Height: 20}},
			{ID: "z2", Name: "Hall", Rect: envmap.Rect{X: 60, Y: 60, Width: 20, Height: 20}, Pending: true},
		},
		CleanedRegions: []envmap.CleanedRegion{
			{Rect: envmap.Rect{X: 0, Y: 80, Width: 100, Height: 20}},
		},
		Pose: envmap.Pose{X: 50, Y: 50},
	}
}

func TestMapGrid_Dimensions(t *testing.T) {
	grid := mapGrid(gridState(), "", 40, 20)
	if len(grid) != 20 {
		t.Fatalf("grid height = %d, want 20", len(grid))
	}
	for y, row := range grid {
		if len(row) != 40 {
			t.Fatalf("row %d width = %d, want 40", y, len(row))
		}
	}
	if grid := mapGrid(gridState(), "", 0, 0); grid != nil {
		t.Fatal("zero-size grid should be nil")
	}
}

func TestMapGrid_Layers(t *testing.T) {
	grid := mapGrid(gridState(), "", 40, 20)

	// Zone z1 covers the top-left corner.
	if grid[0][0] != cellZone {
		t.Fatalf("top-left = %q, want zone marker", grid[0][0])
	}
	// Pending zone z2 uses the pending marker.
	if grid[13][26] != cellPending {
		t.Fatalf("pending zone cell = %q, want pending marker", grid[13][26])
	}
	// Cleaned region fills the bottom strip.
	if grid[18][5] != cellCleaned {
		t.Fatalf("cleaned cell = %q, want cleaned marker", grid[18][5])
	}
	// Robot pose at the center overdraws everything.
	if grid[10][20] != cellRobot {
		t.Fatalf("pose cell = %q, want robot marker", grid[10][20])
	}
}

func TestMapGrid_SelectedZoneMarker(t *testing.T) {
	grid := mapGrid(gridState(), "z1", 40, 20)
	if grid[0][0] != cellChosen {
		t.Fatalf("selected zone cell = %q, want chosen marker", grid[0][0])
	}
	// Unselected zone keeps its own marker.
	if grid[13][26] != cellPending {
		t.Fatalf("other zone cell = %q, want pending marker", grid[13][26])
	}
}

func TestMapGrid_OutOfRangePoseClamped(t *testing.T) {
	state := gridState()
	state.Pose = envmap.Pose{X: 200, Y: -50}
	grid := mapGrid(state, "", 40, 20)
	if grid[0][39] != cellRobot {
		t.Fatalf("clamped pose cell = %q, want robot marker", grid[0][39])
	}
}

func TestCellIndex(t *testing.T) {
	cases := []struct {
		name string
		pct  float64
		size int
		want int
	}{
		{"origin", 0, 40, 0},
		{"mid", 50, 40, 20},
		{"full", 100, 40, 39},
		{"over", 150, 40, 39},
		{"under", -10, 40, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cellIndex(tc.pct, tc.size); got != tc.want {
				t.Fatalf("cellIndex(%v, %d) = %d, want %d", tc.pct, tc.size, got, tc.want)
			}
		})
	}
}
