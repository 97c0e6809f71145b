package config

// Output formats for palette listings.
const (
	OutputFormatText  = "text"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"
)

// PalettectlConfig is the top-level configuration structure for palettectl.
type PalettectlConfig struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Palette PaletteConfig `yaml:"palette"`
	Output  OutputConfig  `yaml:"output"`
}

// CanvasConfig controls how a palette is drawn as vertical bars.
type CanvasConfig struct {
	Width             int     `yaml:"width"`             // Canvas width in terminal cells
	Height            int     `yaml:"height"`            // Canvas height in rows
	ShowLabels        bool    `yaml:"showLabels"`        // Overlay each bar with its hex code
	ContrastThreshold float64 `yaml:"contrastThreshold"` // Brightness above which labels turn black
}

// PaletteConfig holds palette generation defaults.
type PaletteConfig struct {
	MaintainBrightness bool `yaml:"maintainBrightness"` // Sync every entry to the seed's brightness
	AcceptShortHex     bool `yaml:"acceptShortHex"`     // Expand "#RGB" seeds to "#RRGGBB"
}

// OutputConfig controls how palettes are printed.
type OutputConfig struct {
	Format          string `yaml:"format"`          // text, table, json or yaml
	CopyToClipboard bool   `yaml:"copyToClipboard"` // Copy generated hex codes to the clipboard
}
