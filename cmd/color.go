package cmd

import (
	"fmt"
	"strconv"

	"palettectl/internal/color"
	"palettectl/internal/palette"

	"github.com/spf13/cobra"
)

var contrastThreshold float64

var contrastCmd = &cobra.Command{
	Use:   "contrast <color>",
	Short: "Print the label color (black or white) legible on a color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColorArg(args[0], appConfig)
		if err != nil {
			return err
		}
		threshold := appConfig.Canvas.ContrastThreshold
		if cmd.Flags().Changed("threshold") {
			threshold = contrastThreshold
		}
		fmt.Fprintln(cmd.OutOrStdout(), palette.ContrastColor(c, threshold).Hex())
		return nil
	},
}

var brightnessCmd = &cobra.Command{
	Use:   "brightness <color>",
	Short: "Print the perceived brightness of a color in [0,1]",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColorArg(args[0], appConfig)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(palette.Brightness(c), 'f', -1, 64))
		return nil
	},
}

var adjustCmd = &cobra.Command{
	Use:   "adjust <color> <target>",
	Short: "Rescale a color to a target brightness",
	Long: `Scales every channel of the color so that its perceived brightness
becomes the target. Channels that would exceed 255 are clamped, so very
bright targets may not be reached exactly.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColorArg(args[0], appConfig)
		if err != nil {
			return err
		}
		target, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("%w: target brightness %q is not a number", color.ErrRange, args[1])
		}
		adjusted, err := palette.AdjustBrightness(c, target)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), adjusted.Hex())
		return nil
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync <source> <target>",
	Short: "Recolor target to the brightness of source",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := parseColorArg(args[0], appConfig)
		if err != nil {
			return err
		}
		target, err := parseColorArg(args[1], appConfig)
		if err != nil {
			return err
		}
		synced, err := palette.SyncBrightness(source, target)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), synced.Hex())
		return nil
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a random color",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), palette.RandomHex())
	},
}

func init() {
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(brightnessCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(randomCmd)

	contrastCmd.Flags().Float64Var(&contrastThreshold, "threshold", palette.DefaultContrastThreshold, "Brightness above which the label is black")
}
