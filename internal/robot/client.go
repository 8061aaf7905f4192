package robot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API defines the vacuum operations the application consumes. It is
// implemented by *Client and by *Simulator, and by fakes in tests.
type API interface {
	FetchStatus(ctx context.Context) (*StatusResponse, error)
	FetchMap(ctx context.Context) (MapSnapshot, error)
	FetchSchedule(ctx context.Context) ([]ScheduleEntry, error)
	UpdateSchedule(ctx context.Context, entry ScheduleEntry) error
	StartCleaning(ctx context.Context) (CommandAck, error)
	PauseCleaning(ctx context.Context) (CommandAck, error)
	ReturnToDock(ctx context.Context) (CommandAck, error)
	Drive(ctx context.Context, direction string) (CommandAck, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the vacuum's HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "192.168.4.1:8080"
	defaultUserAgent = "vacmate/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchStatus retrieves robot state, battery, and cleaning stats.
func (c *Client) FetchStatus(ctx context.Context) (*StatusResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload StatusResponse
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchMap retrieves the current environment map snapshot.
func (c *Client) FetchMap(ctx context.Context) (MapSnapshot, error) {
	if c == nil {
		return MapSnapshot{}, fmt.Errorf("client is nil")
	}
	var payload MapSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/map", nil, &payload); err != nil {
		return MapSnapshot{}, err
	}
	return payload, nil
}

// FetchSchedule retrieves the cleaning schedule.
func (c *Client) FetchSchedule(ctx context.Context) ([]ScheduleEntry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload ScheduleListResponse
	if err := c.do(ctx, http.MethodGet, "/api/schedule", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Entries, nil
}

// UpdateSchedule replaces one schedule entry on the robot.
func (c *Client) UpdateSchedule(ctx context.Context, entry ScheduleEntry) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(entry.ID) == "" {
		return fmt.Errorf("schedule entry id required")
	}
	path := "/api/schedule/" + url.PathEscape(entry.ID)
	return c.do(ctx, http.MethodPut, path, entry, nil)
}

// StartCleaning begins or resumes an automatic cleaning run.
func (c *Client) StartCleaning(ctx context.Context) (CommandAck, error) {
	return c.command(ctx, "/api/clean/start", nil)
}

// PauseCleaning pauses the current cleaning run.
func (c *Client) PauseCleaning(ctx context.Context) (CommandAck, error) {
	return c.command(ctx, "/api/clean/pause", nil)
}

// ReturnToDock sends the robot back to its charging dock.
func (c *Client) ReturnToDock(ctx context.Context) (CommandAck, error) {
	return c.command(ctx, "/api/dock", nil)
}

// Drive issues a manual drive command.
func (c *Client) Drive(ctx context.Context, direction string) (CommandAck, error) {
	body := struct {
		Direction string `json:"direction"`
	}{Direction: direction}
	return c.command(ctx, "/api/manual", body)
}

func (c *Client) command(ctx context.Context, path string, body any) (CommandAck, error) {
	if c == nil {
		return CommandAck{}, fmt.Errorf("client is nil")
	}
	var ack CommandAck
	if err := c.do(ctx, http.MethodPost, path, body, &ack); err != nil {
		return CommandAck{}, err
	}
	return ack, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
