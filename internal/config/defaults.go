package config

import (
	"fmt"
)

// Default canvas dimensions, sized for an 80+ column terminal.
const (
	DefaultCanvasWidth       = 96
	DefaultCanvasHeight      = 12
	DefaultContrastThreshold = 0.5
)

// GetDefaultConfig returns the built-in configuration that every layer
// is applied on top of.
func GetDefaultConfig() PalettectlConfig {
	return PalettectlConfig{
		Canvas: CanvasConfig{
			Width:             DefaultCanvasWidth,
			Height:            DefaultCanvasHeight,
			ShowLabels:        true,
			ContrastThreshold: DefaultContrastThreshold,
		},
		Palette: PaletteConfig{
			MaintainBrightness: false,
			AcceptShortHex:     false,
		},
		Output: OutputConfig{
			Format: OutputFormatText,
		},
	}
}

// Validate checks that the configuration can drive a render.
func (c PalettectlConfig) Validate() error {
	if c.Canvas.Width < 1 {
		return fmt.Errorf("canvas.width must be at least 1, got %d", c.Canvas.Width)
	}
	if c.Canvas.Height < 1 {
		return fmt.Errorf("canvas.height must be at least 1, got %d", c.Canvas.Height)
	}
	if c.Canvas.ContrastThreshold < 0 || c.Canvas.ContrastThreshold > 1 {
		return fmt.Errorf("canvas.contrastThreshold must be in [0,1], got %g", c.Canvas.ContrastThreshold)
	}
	switch c.Output.Format {
	case OutputFormatText, OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
	default:
		return fmt.Errorf("output.format must be one of text, table, json, yaml, got %q", c.Output.Format)
	}
	return nil
}
