package config

import "colorcycle/internal/speed"

// Config is the top-level configuration structure.
type Config struct {
	Selection []int          `yaml:"selection,omitempty"` // Initial active color ids, in rotation order
	Speed     *int           `yaml:"speed,omitempty"`     // Speed control position, 1 (slow) to 100 (fast)
	Paused    *bool          `yaml:"paused,omitempty"`    // Start with rotation paused
	Zen       *bool          `yaml:"zen,omitempty"`       // Start with the controls hidden
	DarkMode  *bool          `yaml:"darkMode,omitempty"`  // Terminal background for the chrome
	Labels    map[int]string `yaml:"labels,omitempty"`    // Display label per color id
	LogLevel  string         `yaml:"logLevel,omitempty"`  // debug, info, warn or error
}

// IsPaused reports the paused setting, false when unset.
func (c Config) IsPaused() bool { return c.Paused != nil && *c.Paused }

// IsZen reports the zen setting, false when unset.
func (c Config) IsZen() bool { return c.Zen != nil && *c.Zen }

// IsDarkMode reports the dark mode setting, true when unset.
func (c Config) IsDarkMode() bool { return c.DarkMode == nil || *c.DarkMode }

// SpeedValue reports the speed setting, speed.Default when unset.
func (c Config) SpeedValue() int {
	if c.Speed == nil {
		return speed.Default
	}
	return *c.Speed
}

// Bool returns a pointer to b, for populating optional fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to v, for populating optional fields.
func Int(v int) *int { return &v }
