package config

import (
	"errors"
	"fmt"

	"colorcycle/internal/palette"
	"colorcycle/internal/selection"
	"colorcycle/internal/speed"
	"colorcycle/pkg/logging"
)

// ErrInvalid marks configuration values that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if _, err := selection.New(c.Selection); err != nil {
		return fmt.Errorf("%w: selection: %w", ErrInvalid, err)
	}
	if v := c.SpeedValue(); v < speed.Min || v > speed.Max {
		return fmt.Errorf("%w: speed %d outside [%d, %d]", ErrInvalid, v, speed.Min, speed.Max)
	}
	for id := range c.Labels {
		if !palette.Known(id) {
			return fmt.Errorf("%w: label for unknown color id %d", ErrInvalid, id)
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
