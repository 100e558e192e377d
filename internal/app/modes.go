package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"colorcycle/internal/color"
	"colorcycle/internal/palette"
	"colorcycle/internal/rotation"
	"colorcycle/internal/speed"
	"colorcycle/internal/tui/controller"
	"colorcycle/internal/tui/model"
	"colorcycle/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

const swatchCells = 6

// runCLIMode prints each color change as a swatch line until interrupted.
func (a *Application) runCLIMode(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	display := a.config.Display
	period := speed.Period(display.SpeedValue())
	engine, lease, armed := rotation.New(a.selection.IDs(), period, display.IsPaused())

	logging.Info("CLI", "Rotating %d colors every %s. Press Ctrl+C to exit.",
		engine.Count(), speed.Format(speed.PeriodMs(display.SpeedValue())))
	if engine.Paused() {
		logging.Info("CLI", "Rotation is paused; showing the first color only.")
	}
	a.printCurrent(engine)

	driver := rotation.Driver{
		Engine:    engine,
		Clock:     a.clock,
		OnAdvance: a.printCurrent,
	}
	err := driver.Run(ctx, lease, armed)
	logging.Info("CLI", "Rotation stopped.")
	return err
}

func (a *Application) printCurrent(e *rotation.Engine) {
	id, ok := e.Current()
	if !ok {
		return
	}
	option, ok := a.table.Lookup(id)
	if !ok {
		return
	}
	fmt.Fprintln(a.config.Output, swatchLine(option))
	logging.Debug("CLI", "Index %d of %d, generation %d", e.Index(), e.Count(), e.Generation())
}

// swatchLine renders a color as a block of background cells followed by its
// id, value and label.
func swatchLine(option palette.ColorOption) string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(option.Value)).
		Foreground(lipgloss.Color(color.Contrast(option.Value))).
		Render(fmt.Sprintf("%-*d", swatchCells, option.ID))
	line := fmt.Sprintf("%s %s", swatch, option.Value)
	if option.Label != "" {
		line += " " + option.Label
	}
	return line
}

// tuiConfig builds the startup state of the display. A configured debug
// level starts with debug mode on.
func (a *Application) tuiConfig() model.TUIConfig {
	display := a.config.Display
	level := a.config.logLevel(display.LogLevel)

	colorMode := "dark"
	if !display.IsDarkMode() {
		colorMode = "light"
	}

	return model.TUIConfig{
		Table:     a.table,
		Selection: a.selection,
		Speed:     display.SpeedValue(),
		Paused:    display.IsPaused(),
		Zen:       display.IsZen(),
		DebugMode: a.config.Debug || level == logging.LevelDebug,
		LogLevel:  level,
		ColorMode: colorMode,
	}
}

// runTUIMode executes the interactive terminal UI mode
func (a *Application) runTUIMode(ctx context.Context) error {
	color.Initialize(a.config.Display.IsDarkMode())

	// Switch logging to channel-based system for TUI integration.
	// The overlay filters by level so debug mode can be toggled live.
	logChan := logging.InitForTUI(logging.LevelDebug)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(ctx, a.tuiConfig(), logChan)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	return nil
}
