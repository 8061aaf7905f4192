package robot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBind)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesEndpoints(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	var gotManualBody string
	var gotScheduleMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/status":
			_ = json.NewEncoder(w).Encode(StatusResponse{State: StateCleaning, Battery: 64})
		case "/api/map":
			area := 48.2
			_ = json.NewEncoder(w).Encode(MapSnapshot{MappedAreaM2: &area})
		case "/api/schedule":
			_ = json.NewEncoder(w).Encode(ScheduleListResponse{Entries: []ScheduleEntry{
				{ID: "sched-1", StartTime: "09:30", Enabled: true},
			}})
		case "/api/schedule/sched-1":
			gotScheduleMethod = r.Method
			w.WriteHeader(http.StatusNoContent)
		case "/api/manual":
			body, _ := io.ReadAll(r.Body)
			gotManualBody = string(body)
			_ = json.NewEncoder(w).Encode(CommandAck{OK: true, Message: "moved forward"})
		case "/api/clean/start":
			_ = json.NewEncoder(w).Encode(CommandAck{OK: true, Message: "cleaning started"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := NewClient(strings.TrimPrefix(server.URL, "http://"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status, err := client.FetchStatus(ctx)
	if err != nil {
		t.Fatalf("FetchStatus: %v", err)
	}
	if status.State != StateCleaning || status.Battery != 64 {
		t.Fatalf("status = %#v", status)
	}

	snap, err := client.FetchMap(ctx)
	if err != nil {
		t.Fatalf("FetchMap: %v", err)
	}
	if snap.MappedAreaM2 == nil || *snap.MappedAreaM2 != 48.2 {
		t.Fatalf("snapshot area = %v, want 48.2", snap.MappedAreaM2)
	}
	if snap.Zones != nil {
		t.Fatalf("zones = %v, want absent (nil)", snap.Zones)
	}

	entries, err := client.FetchSchedule(ctx)
	if err != nil {
		t.Fatalf("FetchSchedule: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "sched-1" {
		t.Fatalf("schedule = %#v", entries)
	}

	if err := client.UpdateSchedule(ctx, ScheduleEntry{ID: "sched-1", Enabled: false}); err != nil {
		t.Fatalf("UpdateSchedule: %v", err)
	}
	if gotScheduleMethod != http.MethodPut {
		t.Fatalf("schedule method = %q, want PUT", gotScheduleMethod)
	}

	ack, err := client.Drive(ctx, DriveForward)
	if err != nil {
		t.Fatalf("Drive: %v", err)
	}
	if !ack.OK {
		t.Fatalf("ack = %#v", ack)
	}
	if !strings.Contains(gotManualBody, `"direction":"forward"`) {
		t.Fatalf("manual body = %q", gotManualBody)
	}

	if _, err := client.StartCleaning(ctx); err != nil {
		t.Fatalf("StartCleaning: %v", err)
	}

	if gotUserAgent != defaultUserAgent {
		t.Fatalf("user agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
}

func TestClient_ErrorStatusSurfaced(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busted", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(strings.TrimPrefix(server.URL, "http://"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.FetchMap(context.Background()); err == nil {
		t.Fatal("FetchMap returned nil error for 502")
	} else if !strings.Contains(err.Error(), "502") {
		t.Fatalf("error = %v, want status code mentioned", err)
	}
}

func TestClient_UpdateScheduleRequiresID(t *testing.T) {
	client, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if err := client.UpdateSchedule(context.Background(), ScheduleEntry{}); err == nil {
		t.Fatal("UpdateSchedule accepted empty id")
	}
}
