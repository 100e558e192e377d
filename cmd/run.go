package cmd

import (
	"context"
	"fmt"

	"colorcycle/internal/app"

	"github.com/spf13/cobra"
)

// runOptions are the flags shared by the root and run commands.
var runOptions struct {
	colors     []int
	speed      int
	paused     bool
	zen        bool
	noTUI      bool
	debug      bool
	configPath string
}

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start the color display",
		Long: `Starts the color display. It can run in two modes:

1. Interactive TUI Mode (default):
   - Fills the terminal with the current color.
   - Shows the speed slider, the pause button and the color swatches below it.
   - Press h or ? for the key bindings.

2. Non-TUI / CLI Mode (using --no-tui flag):
   - Prints a swatch line for every color change until interrupted (Ctrl+C).

Configuration:
  Start values are read from ~/.config/colorcycle/config.yaml and
  ./.colorcycle/config.yaml, or from the file given with --config.
  Flags take precedence. Use 'colorcycle config' to see the effective values.`,
		Args: cobra.NoArgs,
		RunE: runDisplay,
	}
	addRunFlags(runCmd)
	return runCmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&runOptions.colors, "colors", nil, "Initial color ids in rotation order, e.g. 1,3,5")
	cmd.Flags().IntVar(&runOptions.speed, "speed", 0, "Initial speed from 1 (slow) to 100 (fast)")
	cmd.Flags().BoolVar(&runOptions.paused, "paused", false, "Start with the rotation paused")
	cmd.Flags().BoolVar(&runOptions.zen, "zen", false, "Start with the controls hidden")
	cmd.Flags().BoolVar(&runOptions.noTUI, "no-tui", false, "Print color changes instead of starting the TUI")
	cmd.Flags().BoolVar(&runOptions.debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&runOptions.configPath, "config", "", "Read configuration from this file only")
}

// overridesFromFlags collects the flags the user actually set.
func overridesFromFlags(cmd *cobra.Command) app.Overrides {
	var o app.Overrides
	flags := cmd.Flags()
	if flags.Changed("colors") {
		o.Colors = runOptions.colors
		if o.Colors == nil {
			o.Colors = []int{}
		}
	}
	if flags.Changed("speed") {
		v := runOptions.speed
		o.Speed = &v
	}
	if flags.Changed("paused") {
		paused := runOptions.paused
		o.Paused = &paused
	}
	if flags.Changed("zen") {
		zen := runOptions.zen
		o.Zen = &zen
	}
	return o
}

// runDisplay is the entry point of the root and run commands
func runDisplay(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(runOptions.noTUI, runOptions.debug, runOptions.configPath)
	cfg.Overrides = overridesFromFlags(cmd)

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}
