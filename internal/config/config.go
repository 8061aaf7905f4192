package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields vacmate needs to reach the robot.
type Config struct {
	APIBind    string
	PollEvery  time.Duration
	StaleAfter time.Duration
}

const (
	defaultConfigPath   = "~/.config/vacmate/config.toml"
	defaultAPIBind      = "192.168.4.1:8080"
	defaultPollSeconds  = 3
	defaultStaleSeconds = 30
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBind      string `toml:"api_bind"`
		PollSeconds  int    `toml:"poll_seconds"`
		StaleSeconds int    `toml:"stale_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if bind := strings.TrimSpace(raw.APIBind); bind != "" {
		cfg.APIBind = bind
	}
	if raw.PollSeconds > 0 {
		cfg.PollEvery = time.Duration(raw.PollSeconds) * time.Second
	}
	if raw.StaleSeconds > 0 {
		cfg.StaleAfter = time.Duration(raw.StaleSeconds) * time.Second
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		APIBind:    defaultAPIBind,
		PollEvery:  defaultPollSeconds * time.Second,
		StaleAfter: defaultStaleSeconds * time.Second,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
