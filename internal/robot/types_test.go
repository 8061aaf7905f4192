package robot

import (
	"encoding/json"
	"testing"
)

func TestMapSnapshot_AbsentFieldsStayNil(t *testing.T) {
	var snap MapSnapshot
	if err := json.Unmarshal([]byte(`{"mappedAreaM2": 12.5}`), &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if snap.MappedAreaM2 == nil || *snap.MappedAreaM2 != 12.5 {
		t.Fatalf("MappedAreaM2 = %v, want 12.5", snap.MappedAreaM2)
	}
	if snap.Zones != nil || snap.Pose != nil || snap.ObstacleCount != nil || snap.CleanedRegions != nil {
		t.Fatalf("absent fields decoded non-nil: %#v", snap)
	}
}

func TestMapSnapshot_PresentEmptyZonesDecodeNonNil(t *testing.T) {
	// "zones": [] is an authoritative empty list, distinct from omission.
	var snap MapSnapshot
	if err := json.Unmarshal([]byte(`{"zones": []}`), &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if snap.Zones == nil {
		t.Fatal("empty zones array decoded as absent")
	}
	if len(*snap.Zones) != 0 {
		t.Fatalf("zones = %#v, want empty", *snap.Zones)
	}
}

func TestMapSnapshot_ParsedTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		zero bool
	}{
		{"rfc3339", "2026-03-01T10:15:00Z", false},
		{"robot layout", "2026-03-01 10:15:00", false},
		{"garbage", "yesterday-ish", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := MapSnapshot{Timestamp: tt.in}
			got := snap.ParsedTimestamp()
			if got.IsZero() != tt.zero {
				t.Fatalf("ParsedTimestamp(%q) = %v, zero=%v", tt.in, got, tt.zero)
			}
			if !tt.zero && (got.Hour() != 10 || got.Minute() != 15) {
				t.Fatalf("ParsedTimestamp(%q) = %v, want 10:15", tt.in, got)
			}
		})
	}
}

func TestScheduleEntry_DaysLabel(t *testing.T) {
	tests := []struct {
		name string
		days []string
		want string
	}{
		{"every day", []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, "Every day"},
		{"some days", []string{"Mon", "Wed", "Fri"}, "Mon, Wed, Fri"},
		{"no days", nil, "Never"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ScheduleEntry{Days: tt.days}
			if got := e.DaysLabel(); got != tt.want {
				t.Fatalf("DaysLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusResponse_Charging(t *testing.T) {
	if !(StatusResponse{State: "Docked"}).Charging() {
		t.Fatal("Charging() = false for docked state")
	}
	if (StatusResponse{State: StateCleaning}).Charging() {
		t.Fatal("Charging() = true while cleaning")
	}
}
