package cmd

import (
	"fmt"
	"os"

	"palettectl/internal/color"
	"palettectl/internal/config"
	"palettectl/internal/palette"
	"palettectl/internal/render"
	"palettectl/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Swapped out in tests.
var (
	isTerminal = func() bool {
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	clipboardWriteAll = clipboard.WriteAll
)

var (
	generateMaintainBrightness bool
	generateLabels             bool
	generateWidth              int
	generateHeight             int
	generateOutput             string
	generateCopy               bool
	generateNoCanvas           bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [seed]",
	Short: "Generate a six color palette from a seed color",
	Long: `Generates six related colors by permuting the red, green and blue
channels of the seed color (#RRGGBB). Without a seed a random color is used.

On a terminal the palette is drawn as vertical bars above the listing.
Use --output table for a bordered listing, --output json or --output yaml
for machine readable output.`,
	Example: `  palettectl generate "#6DCE81"
  palettectl generate "#6DCE81" --maintain-brightness
  palettectl generate --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := appConfig
	applyGenerateFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed, err := resolveSeed(args, cfg)
	if err != nil {
		return err
	}

	p := palette.Generate(seed, cfg.Palette.MaintainBrightness)
	logging.Debug("Generate", "Generated palette from %s (maintain brightness: %t)", seed, cfg.Palette.MaintainBrightness)

	out := cmd.OutOrStdout()
	if drawsCanvas(cfg.Output.Format) && !generateNoCanvas && isTerminal() {
		canvas, err := render.NewCanvas(canvasConfig(cfg)).Render(p)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, canvas)
	}

	swatches := palette.Describe(p, cfg.Canvas.ContrastThreshold)
	if err := render.Format(out, swatches, cfg.Output.Format); err != nil {
		return err
	}

	if cfg.Output.CopyToClipboard {
		if err := clipboardWriteAll(render.HexList(p)); err != nil {
			return fmt.Errorf("failed to copy palette to clipboard: %w", err)
		}
		logging.Info("Generate", "Copied %d colors to the clipboard", palette.Size)
	}
	return nil
}

// drawsCanvas reports whether the canvas goes above a listing in format.
// Structured formats stay machine readable.
func drawsCanvas(format string) bool {
	return format == config.OutputFormatText || format == config.OutputFormatTable
}

// applyGenerateFlags overrides cfg with the flags set on the command line.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.PalettectlConfig) {
	flags := cmd.Flags()
	if flags.Changed("maintain-brightness") {
		cfg.Palette.MaintainBrightness = generateMaintainBrightness
	}
	if flags.Changed("labels") {
		cfg.Canvas.ShowLabels = generateLabels
	}
	if flags.Changed("width") {
		cfg.Canvas.Width = generateWidth
	}
	if flags.Changed("height") {
		cfg.Canvas.Height = generateHeight
	}
	if flags.Changed("output") {
		cfg.Output.Format = generateOutput
	}
	if flags.Changed("copy") {
		cfg.Output.CopyToClipboard = generateCopy
	}
}

// resolveSeed parses the optional seed argument, falling back to a random color.
func resolveSeed(args []string, cfg config.PalettectlConfig) (color.Color, error) {
	if len(args) == 0 {
		seed := palette.RandomColor()
		logging.Debug("Generate", "No seed given, using random seed %s", seed)
		return seed, nil
	}
	return parseColorArg(args[0], cfg)
}

// parseColorArg parses a color given on the command line.
func parseColorArg(s string, cfg config.PalettectlConfig) (color.Color, error) {
	if cfg.Palette.AcceptShortHex {
		expanded, err := color.ExpandShortHex(s)
		if err != nil {
			return color.Color{}, err
		}
		s = expanded
	}
	return color.FromHex(s)
}

func canvasConfig(cfg config.PalettectlConfig) render.CanvasConfig {
	return render.CanvasConfig{
		Width:             cfg.Canvas.Width,
		Height:            cfg.Canvas.Height,
		ShowLabels:        cfg.Canvas.ShowLabels,
		ContrastThreshold: cfg.Canvas.ContrastThreshold,
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVarP(&generateMaintainBrightness, "maintain-brightness", "m", false, "Rescale every color to the seed's brightness")
	generateCmd.Flags().BoolVar(&generateLabels, "labels", true, "Draw hex labels on the canvas")
	generateCmd.Flags().IntVar(&generateWidth, "width", 0, "Canvas width in cells (default from config)")
	generateCmd.Flags().IntVar(&generateHeight, "height", 0, "Canvas height in rows (default from config)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", config.OutputFormatText, "Output format: text, table, json or yaml")
	generateCmd.Flags().BoolVar(&generateCopy, "copy", false, "Copy the hex codes to the clipboard")
	generateCmd.Flags().BoolVar(&generateNoCanvas, "no-canvas", false, "Never draw the canvas")
}
