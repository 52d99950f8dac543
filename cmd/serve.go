package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// serveCmd runs the MCP server over stdio.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve color resolution to AI assistants over MCP (stdio)",
	Long: `Starts an MCP server on stdin/stdout exposing the tools:

  resolve_app_color  resolve an application's primary color
  extract_palette    extract the palette of an image file
  list_packages      list the packages in the registry

Logs are written to stderr. The server stops on SIGINT/SIGTERM or when
stdin is closed.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	application, err := newApplication()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Serve(ctx, rootCmd.Version, cmd.InOrStdin(), cmd.OutOrStdout())
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
