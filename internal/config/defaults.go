package config

import (
	"slices"

	"colorcycle/internal/selection"
	"colorcycle/internal/speed"
)

// GetDefaultConfig returns the configuration a display starts with when no
// file overrides it.
func GetDefaultConfig() Config {
	return Config{
		Selection: slices.Clone(selection.DefaultIDs),
		Speed:     Int(speed.Default),
		LogLevel:  "info",
	}
}
