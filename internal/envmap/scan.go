package envmap

import (
	"context"
	"fmt"

	"vacmate/internal/robot"
)

// Source supplies one environment snapshot per call. Implemented by
// *robot.Client and *robot.Simulator.
type Source interface {
	FetchMap(ctx context.Context) (robot.MapSnapshot, error)
}

// Coordinator drives the scan lifecycle around a Source: it gates on the
// store's busy flag, fetches, and applies exactly one reconciliation per
// successful fetch. A failed fetch leaves the state untouched and is
// reported once to the caller.
type Coordinator struct {
	store  *Store
	source Source
}

// NewCoordinator wires a store to its snapshot source.
func NewCoordinator(store *Store, source Source) *Coordinator {
	return &Coordinator{store: store, source: source}
}

// Scan performs one fetch-and-reconcile cycle. It returns ErrScanInFlight
// when a scan is already running, or a wrapped fetch error when the source
// fails.
func (c *Coordinator) Scan(ctx context.Context) error {
	if err := c.store.beginScan(); err != nil {
		return err
	}

	payload, err := c.source.FetchMap(ctx)
	if err != nil {
		c.store.failScan(err)
		return fmt.Errorf("scan: %w", err)
	}

	c.store.applySnapshot(SnapshotFromPayload(payload))
	return nil
}

// Store returns the store this coordinator feeds.
func (c *Coordinator) Store() *Store {
	return c.store
}
