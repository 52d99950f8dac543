package cmd

import (
	"os"

	"appcolors/internal/app"
	"appcolors/internal/cli"

	"github.com/spf13/cobra"
)

var (
	rootRegistry string
	rootLogLevel string
	rootDebug    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "appcolors",
	Short: "Resolve the primary color of installed applications",
	Long: `appcolors derives a representative color for an application so a UI
can be tinted to match it. The color comes from the launch activity theme,
then the application theme, then a palette extracted from the launcher icon,
and finally an optional fallback.

Applications are read from a registry directory holding one
<package>/package.yaml manifest per application.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unknown packages, unreadable images)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "appcolors version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication bootstraps the application from the persistent flags.
func newApplication() (*app.Application, error) {
	return app.NewApplication(app.NewConfig(rootDebug, rootLogLevel, rootRegistry))
}

// newPrinter builds the output printer for a command. asJSON is the --json
// shorthand and wins over format.
func newPrinter(cmd *cobra.Command, format string, asJSON bool) (*cli.Printer, error) {
	if asJSON {
		format = string(cli.OutputFormatJSON)
	}
	f, err := cli.ParseOutputFormat(format)
	if err != nil {
		return nil, err
	}
	return cli.NewPrinter(cmd.OutOrStdout(), f), nil
}

func init() {
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().StringVar(&rootRegistry, "registry", "", "Registry directory (overrides registry.root)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
}
