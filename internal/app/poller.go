package app

import (
	"context"
	"errors"
	"log"
	"time"

	"vacmate/internal/envmap"
	"vacmate/internal/robot"
	"vacmate/internal/state"
)

const (
	defaultPollInterval = 3 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the stores at a
// fixed cadence, backing off while the robot is unreachable. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, scanner *envmap.Coordinator, api robot.API, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			refresh(ctx, store, scanner, api)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, scanner *envmap.Coordinator, api robot.API) {
	status, err := api.FetchStatus(ctx)
	if err != nil {
		store.Update(nil, nil, err)
		log.Printf("status poll failed: %v", err)
		return
	}
	schedule, err := api.FetchSchedule(ctx)
	if err != nil {
		store.Update(nil, nil, err)
		log.Printf("schedule poll failed: %v", err)
		return
	}
	store.Update(status, schedule, nil)

	// A manual scan may already be running; skipping a cycle is fine.
	if err := scanner.Scan(ctx); err != nil && !errors.Is(err, envmap.ErrScanInFlight) {
		log.Printf("map poll failed: %v", err)
	}
}

// calculateBackoff doubles the poll interval per consecutive failure, capped
// at maxBackoff, so a powered-off robot is not hammered.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
