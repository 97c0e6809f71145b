package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"palettectl/internal/palette"
	"palettectl/internal/render"
	"palettectl/pkg/logging"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

// newScreen is swapped for a simulation screen in tests.
var newScreen = tcell.NewScreen

var showMaintainBrightness bool

var showCmd = &cobra.Command{
	Use:   "show [seed]",
	Short: "Show a palette full screen",
	Long: `Draws the palette generated from the seed color across the whole
terminal and waits for any key. Without a seed a random color is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := appConfig
	if cmd.Flags().Changed("maintain-brightness") {
		cfg.Palette.MaintainBrightness = showMaintainBrightness
	}

	seed, err := resolveSeed(args, cfg)
	if err != nil {
		return err
	}
	p := palette.Generate(seed, cfg.Palette.MaintainBrightness)

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Debug("Show", "Showing palette for seed %s", seed)
	return render.NewScreen(screen, canvasConfig(cfg)).Show(ctx, p)
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVarP(&showMaintainBrightness, "maintain-brightness", "m", false, "Rescale every color to the seed's brightness")
}
