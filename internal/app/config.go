package app

import (
	"io"
	"os"
	"slices"

	"colorcycle/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// Explicit config file; empty means the layered lookup.
	ConfigPath string

	// Command line values that take precedence over the config file.
	Overrides Overrides

	// Effective configuration, set by NewApplication.
	Display *config.Config

	// Destination of CLI mode output.
	Output io.Writer
}

// Overrides are start values given on the command line. Nil fields leave
// the config file setting alone.
type Overrides struct {
	Colors []int
	Speed  *int
	Paused *bool
	Zen    *bool
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
		Output:     os.Stdout,
	}
}

// Apply layers the overrides onto base and validates the result.
func (o Overrides) Apply(base config.Config) (config.Config, error) {
	if o.Colors != nil {
		base.Selection = slices.Clone(o.Colors)
	}
	if o.Speed != nil {
		base.Speed = config.Int(*o.Speed)
	}
	if o.Paused != nil {
		base.Paused = config.Bool(*o.Paused)
	}
	if o.Zen != nil {
		base.Zen = config.Bool(*o.Zen)
	}
	if err := base.Validate(); err != nil {
		return config.Config{}, err
	}
	return base, nil
}
