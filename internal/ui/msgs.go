package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vacmate/internal/envmap"
	"vacmate/internal/robot"
	"vacmate/internal/state"
)

type tickMsg time.Time

// storesMsg carries fresh read snapshots of both stores.
type storesMsg struct {
	device  state.Snapshot
	mapView envmap.View
}

type scanDoneMsg struct {
	err error
}

type ackMsg struct {
	ack robot.CommandAck
	err error
}

type scheduleSavedMsg struct {
	entries []robot.ScheduleEntry
	err     error
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func readStoresCmd(store *state.Store, mapStore *envmap.Store) tea.Cmd {
	return func() tea.Msg {
		msg := storesMsg{}
		if store != nil {
			msg.device = store.Snapshot()
		}
		if mapStore != nil {
			msg.mapView = mapStore.View()
		}
		return msg
	}
}

func scanCmd(ctx context.Context, scanner *envmap.Coordinator) tea.Cmd {
	return func() tea.Msg {
		return scanDoneMsg{err: scanner.Scan(ctx)}
	}
}

func commandCmd(run func() (robot.CommandAck, error)) tea.Cmd {
	return func() tea.Msg {
		ack, err := run()
		return ackMsg{ack: ack, err: err}
	}
}

// toggleScheduleCmd flips one entry's enabled flag, round-trips it to the
// robot, and reports the updated schedule.
func toggleScheduleCmd(ctx context.Context, api robot.API, entries []robot.ScheduleEntry, idx int) tea.Cmd {
	return func() tea.Msg {
		if idx < 0 || idx >= len(entries) {
			return scheduleSavedMsg{entries: entries}
		}
		updated := make([]robot.ScheduleEntry, len(entries))
		copy(updated, entries)
		updated[idx].Enabled = !updated[idx].Enabled

		if err := api.UpdateSchedule(ctx, updated[idx]); err != nil {
			return scheduleSavedMsg{entries: entries, err: err}
		}
		return scheduleSavedMsg{entries: updated}
	}
}
