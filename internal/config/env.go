package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "COLORCYCLE_"

// For mocking in tests; nil reads the process environment.
var environment map[string]string

// envConfig mirrors the settings that may come from COLORCYCLE_* variables.
type envConfig struct {
	Selection []int  `env:"SELECTION" envSeparator:","`
	Speed     *int   `env:"SPEED"`
	Paused    *bool  `env:"PAUSED"`
	Zen       *bool  `env:"ZEN"`
	DarkMode  *bool  `env:"DARK_MODE"`
	LogLevel  string `env:"LOG_LEVEL"`
}

// loadEnvOverlay reads COLORCYCLE_* variables into a Config holding only the
// fields that were set.
func loadEnvOverlay() (Config, error) {
	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: envPrefix, Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return Config{
		Selection: ec.Selection,
		Speed:     ec.Speed,
		Paused:    ec.Paused,
		Zen:       ec.Zen,
		DarkMode:  ec.DarkMode,
		LogLevel:  ec.LogLevel,
	}, nil
}
