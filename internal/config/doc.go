// Package config handles loading the vacmate configuration file.
//
// # Overview
//
// The config points vacmate at the robot's local API and tunes the polling
// cadence. It is read once at startup from ~/.config/vacmate/config.toml (or
// an explicit path), and every field is optional: a missing file or missing
// fields fall back to defaults, so vacmate works out of the box.
//
// # TOML Format
//
//	api_bind = "192.168.4.1:8080"
//	poll_seconds = 3
//	stale_seconds = 30
//
//   - api_bind: host:port of the robot's HTTP API
//   - poll_seconds: background refresh interval for status and map
//   - stale_seconds: age after which map data shows the outdated indicator
//
// Tilde expansion is performed on the config path. Load returns errors only
// for unreadable or unparseable files; absence is not an error.
package config
