package game

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	MinGridWidth        = 60
	MinGridHeight       = 20
	DefaultTickInterval = 80 * time.Millisecond
	DefaultStartDelay   = 2 * time.Second
	DefaultDeathPause   = 2 * time.Second
	DefaultTitle        = "Snake"
)

// Starting shape, placed clear of the border on any grid of at least the minimum size.
var (
	InitialHead    = Position{X: 9, Y: 7}
	InitialHeading = Right
	InitialBody    = []Position{
		{X: 8, Y: 7},
		{X: 8, Y: 8},
		{X: 7, Y: 8},
		{X: 7, Y: 9},
		{X: 7, Y: 10},
		{X: 8, Y: 10},
		{X: 8, Y: 11},
	}
)

type Config struct {
	// TickInterval is fixed for the session; score never changes it.
	TickInterval time.Duration
	StartDelay   time.Duration
	DeathPause   time.Duration
	// Seed 0 picks a time based seed.
	Seed  uint64
	Title string
}

func DefaultConfig() Config {
	return Config{
		TickInterval: DefaultTickInterval,
		StartDelay:   DefaultStartDelay,
		DeathPause:   DefaultDeathPause,
		Title:        DefaultTitle,
	}
}

// ConfigFromEnv overlays SNAKE_* environment variables on DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	durations := []struct {
		name   string
		target *time.Duration
	}{
		{"SNAKE_TICK_MS", &cfg.TickInterval},
		{"SNAKE_START_DELAY_MS", &cfg.StartDelay},
		{"SNAKE_DEATH_PAUSE_MS", &cfg.DeathPause},
	}
	for _, d := range durations {
		raw := os.Getenv(d.name)
		if raw == "" {
			continue
		}
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			return Config{}, fmt.Errorf("invalid %s %q: want a non-negative number of milliseconds", d.name, raw)
		}
		*d.target = time.Duration(ms) * time.Millisecond
	}

	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("invalid SNAKE_TICK_MS: tick interval must be positive")
	}

	if raw := os.Getenv("SNAKE_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SNAKE_SEED %q: %w", raw, err)
		}
		cfg.Seed = seed
	}

	if title := os.Getenv("SNAKE_TITLE"); title != "" {
		cfg.Title = title
	}

	return cfg, nil
}
