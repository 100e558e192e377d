package app

import (
	"context"
	"fmt"
	"os"

	"colorcycle/internal/config"
	"colorcycle/internal/palette"
	"colorcycle/internal/rotation"
	"colorcycle/internal/selection"
	"colorcycle/pkg/logging"
)

const bootstrapSubsystem = "Bootstrap"

// Application is the main application structure that bootstraps and runs the
// display.
type Application struct {
	config    *Config
	table     *palette.Table
	selection *selection.Selection
	clock     rotation.Clock
}

// NewApplication loads the configuration, applies command line overrides and
// prepares the initial display state.
func NewApplication(cfg *Config) (*Application, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(cfg.logLevel(""), cfg.Output)

	var fileCfg config.Config
	var err error
	if cfg.ConfigPath != "" {
		fileCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error(bootstrapSubsystem, err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug(bootstrapSubsystem, "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		fileCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error(bootstrapSubsystem, err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug(bootstrapSubsystem, "Loaded configuration using layered approach")
	}

	effective, err := cfg.Overrides.Apply(fileCfg)
	if err != nil {
		return nil, fmt.Errorf("invalid command line options: %w", err)
	}
	cfg.Display = &effective
	logging.InitForCLI(cfg.logLevel(effective.LogLevel), cfg.Output)

	sel, err := selection.New(effective.Selection)
	if err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}

	return &Application{
		config:    cfg,
		table:     palette.NewTable(effective.Labels),
		selection: sel,
		clock:     rotation.RealClock(),
	}, nil
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return a.runCLIMode(ctx)
	}
	return a.runTUIMode(ctx)
}

// logLevel resolves the log level: --debug wins over the configured level.
func (c *Config) logLevel(configured string) logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	level, err := logging.ParseLevel(configured)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}
