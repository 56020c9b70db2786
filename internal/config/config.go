// Package config loads solver settings from the environment, optionally seeded from a
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/cxd309/aero-engine/internal/cornering"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvGravity        = "AERO_GRAVITY"
	EnvStraightRadius = "AERO_STRAIGHT_RADIUS"
	EnvTolerance      = "AERO_TOLERANCE"
	EnvMaxIterations  = "AERO_MAX_ITERATIONS"
	EnvDebug          = "AERO_DEBUG"
)

// Config is the resolved runtime configuration.
type Config struct {
	Solver cornering.Config
	Debug  bool
}

// Load reads envFile (if it exists) into the process environment without overriding
// variables already set, then resolves Config on top of cornering.DefaultConfig.
// An empty envFile skips the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
			}
		} else {
			log.Printf("Loaded environment from %s", envFile)
		}
	}
	return FromEnv()
}

// FromEnv resolves Config from the current environment.
func FromEnv() (Config, error) {
	cfg := Config{Solver: cornering.DefaultConfig()}

	floats := []struct {
		name string
		dst  *float64
	}{
		{EnvGravity, &cfg.Solver.Gravity},
		{EnvStraightRadius, &cfg.Solver.StraightRadius},
		{EnvTolerance, &cfg.Solver.Tolerance},
	}
	for _, f := range floats {
		raw, ok := os.LookupEnv(f.name)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || !(v > 0) {
			return Config{}, fmt.Errorf("%s must be a positive number, got %q", f.name, raw)
		}
		*f.dst = v
	}

	if raw := os.Getenv(EnvMaxIterations); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvMaxIterations, raw)
		}
		cfg.Solver.MaxIterations = n
	}

	if raw := os.Getenv(EnvDebug); raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean, got %q", EnvDebug, raw)
		}
		cfg.Debug = debug
	}
	return cfg, nil
}
