package cmd

import (
	"fmt"
	"os"

	"palettectl/internal/config"
	"palettectl/pkg/logging"

	"github.com/spf13/cobra"
)

// configPath is an explicit config file layered on top of the user and
// project configuration.
var configPath string

// debug enables verbose logging on stderr.
var debug bool

// logLevel is the minimum level logged when --debug is not set.
var logLevel string

// appConfig is the configuration loaded before any subcommand runs.
var appConfig = config.GetDefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "palettectl",
	Short: "Generate related color palettes from a single seed color",
	Long: `palettectl builds a palette of six related colors from one seed color
by permuting its red, green and blue channels, optionally rescaling every
entry to the seed's perceived brightness, and draws the palette as vertical
bars labelled with legible hex codes.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid colors, unreadable config)
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "palettectl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// initApp sets up logging and loads the layered configuration.
func initApp(cmd *cobra.Command, args []string) error {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	if debug {
		level = logging.LevelDebug
	}
	// stdout carries palettes and the MCP stdio transport
	logging.InitForCLI(level, os.Stderr)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	appConfig = cfg
	logging.Debug("CLI", "Loaded configuration: canvas %dx%d, output %s", cfg.Canvas.Width, cfg.Canvas.Height, cfg.Output.Format)
	return nil
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file layered over ~/.config/palettectl/config.yaml and ./.palettectl/config.yaml")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}
