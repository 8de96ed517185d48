// Package config provides environment-variable configuration for the equity
// CLI, giving operators a way to set defaults without repeating flags.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names read by cmd/equity.
const (
	// EnvSeed provides the base RNG seed for deterministic runs.
	EnvSeed = "RANGEEQUITY_SEED"

	// EnvThreads overrides the default worker thread count.
	EnvThreads = "RANGEEQUITY_THREADS"

	// EnvGames overrides the default number of simulated trials.
	EnvGames = "RANGEEQUITY_GAMES"

	// EnvLogLevel sets the charmbracelet/log level (debug, info, warn, error).
	EnvLogLevel = "RANGEEQUITY_LOG_LEVEL"
)

// EquityConfig holds defaults parsed from the environment. Any field a
// command-line flag also sets takes precedence over its value here.
type EquityConfig struct {
	// Seed is the base RNG seed (0 means "not set", caller should pick one).
	Seed int64

	// Threads is the default worker count (0 means "not set").
	Threads int

	// Games is the default trial count (0 means "not set").
	Games uint64

	// LogLevel is the charmbracelet/log level name, defaulting to "info".
	LogLevel string
}

// FromEnv parses configuration from environment variables. Every field is
// optional; FromEnv only errors when a set variable fails to parse.
func FromEnv() (*EquityConfig, error) {
	cfg := &EquityConfig{LogLevel: "info"}

	if seedStr := os.Getenv(EnvSeed); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if threadsStr := os.Getenv(EnvThreads); threadsStr != "" {
		threads, err := strconv.Atoi(threadsStr)
		if err != nil || threads < 1 {
			return nil, fmt.Errorf("invalid %s value %q", EnvThreads, threadsStr)
		}
		cfg.Threads = threads
	}

	if gamesStr := os.Getenv(EnvGames); gamesStr != "" {
		games, err := strconv.ParseUint(gamesStr, 10, 64)
		if err != nil || games < 1 {
			return nil, fmt.Errorf("invalid %s value %q", EnvGames, gamesStr)
		}
		cfg.Games = games
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}
