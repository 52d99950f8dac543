package cmd

import (
	"fmt"

	"appcolors/internal/color"

	"github.com/spf13/cobra"
)

var previewFallback string

var previewCmd = &cobra.Command{
	Use:   "preview <package>",
	Short: "Show a full-screen preview tinted with an application's color",
	Long: `Resolves the application's color in the background and fills the terminal
with it once it arrives. The resolver's trace is shown while it runs.

Keys: y copies the color, r resolves again, q quits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication()
		if err != nil {
			return err
		}

		var fallback *color.RGB
		if previewFallback != "" {
			c, err := color.ParseHex(previewFallback)
			if err != nil {
				return fmt.Errorf("invalid --fallback: %w", err)
			}
			fallback = &c
		} else if fallback, err = application.DefaultFallback(); err != nil {
			return err
		}

		return application.RunPreview(cmd.Context(), args[0], fallback)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewFallback, "fallback", "", "Hex color shown when nothing resolves")
}
