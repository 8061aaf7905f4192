package app

import (
	"context"
	"fmt"
	"time"

	"vacmate/internal/config"
	"vacmate/internal/envmap"
	"vacmate/internal/prefs"
	"vacmate/internal/robot"
	"vacmate/internal/state"
	"vacmate/internal/ui"
)

// Options configure the vacmate application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/vacmate/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
	Demo       bool   // run against the built-in simulator
}

// Run boots the vacmate TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	var api robot.API
	if opts.Demo {
		api = robot.NewSimulator(time.Now().UnixNano())
	} else {
		client, err := robot.NewClient(cfg.APIBind)
		if err != nil {
			return fmt.Errorf("init robot client: %w", err)
		}
		api = client
	}

	store := &state.Store{}
	mapStore := envmap.NewStore()
	scanner := envmap.NewCoordinator(mapStore, api)

	interval := cfg.PollEvery
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background poller
	StartPoller(ctx, store, scanner, api, interval)

	// Do initial refresh to populate stores before UI starts
	refresh(ctx, store, scanner, api)

	uiOpts := ui.Options{
		Context:    ctx,
		API:        api,
		Store:      store,
		MapStore:   mapStore,
		Scanner:    scanner,
		PollTick:   interval,
		StaleAfter: cfg.StaleAfter,
		ThemeName:  userPrefs.Theme,
		FanSpeed:   userPrefs.FanSpeed,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
