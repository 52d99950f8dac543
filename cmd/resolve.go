package cmd

import (
	"fmt"

	"appcolors/internal/app"
	"appcolors/internal/cli"
	"appcolors/internal/color"
	"appcolors/internal/resolver"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// For mocking in tests
var clipboardWriteAll = clipboard.WriteAll

var (
	resolveFallback string
	resolveOutput   string
	resolveJSON     bool
	resolveCopy     bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <package>",
	Short: "Print the primary color of an application",
	Long: `Resolves the primary color of an application and prints it as a hex value
together with the source it came from:

  activity-theme            colorPrimary of the launch activity theme
  activity-theme-legacy     android:colorPrimary of the launch activity theme
  application-theme         colorPrimary of the application theme
  application-theme-legacy  android:colorPrimary of the application theme
  icon                      palette extracted from the launcher icon
  fallback                  the --fallback color (or globalSettings.defaultFallback)

The command fails when no color is found and no fallback is configured.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(cmd, resolveOutput, resolveJSON)
	if err != nil {
		return err
	}

	application, err := newApplication()
	if err != nil {
		return err
	}

	fallback, err := resolveFallbackColor(application)
	if err != nil {
		return err
	}

	pkg := args[0]
	res, err := application.Resolve(cmd.Context(), pkg, fallback)
	if err != nil {
		return err
	}
	if !res.Found {
		return fmt.Errorf("no color found for %s", pkg)
	}

	if resolveCopy {
		if err := clipboardWriteAll(res.Color.Hex()); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	switch {
	case printer.Structured():
		return printer.PrintStructured(res)
	case printer.Format() == cli.OutputFormatTable:
		printer.PrintTable([]string{"package", "color", "source"}, [][]interface{}{
			{res.Package, color.Label(res.Color), res.Source.String()},
		})
		return nil
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", res.Color.Hex(), sourceLabel(res.Source))
		return nil
	}
}

// resolveFallbackColor returns the --fallback flag, else the configured
// default fallback, else nil.
func resolveFallbackColor(application *app.Application) (*color.RGB, error) {
	if resolveFallback == "" {
		return application.DefaultFallback()
	}
	c, err := color.ParseHex(resolveFallback)
	if err != nil {
		return nil, fmt.Errorf("invalid --fallback: %w", err)
	}
	return &c, nil
}

func sourceLabel(s resolver.Source) string {
	return "(" + s.String() + ")"
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveFallback, "fallback", "", "Hex color used when nothing resolves, e.g. #607D8B")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "text", "Output format: text, table, json or yaml")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Shorthand for --output json")
	resolveCmd.Flags().BoolVar(&resolveCopy, "copy", false, "Copy the hex color to the clipboard")
}
