package app

import (
	"context"
	"io"

	"appcolors/internal/color"
	"appcolors/internal/mcpserver"
	"appcolors/internal/palette"
	"appcolors/internal/resolver"
	"appcolors/internal/tui"
	"appcolors/pkg/logging"
)

// Resolve resolves the color of pkg, substituting fallback when set.
func (a *Application) Resolve(ctx context.Context, pkg string, fallback *color.RGB) (resolver.Result, error) {
	return a.services.Resolver.Resolve(ctx, resolver.Request{Package: pkg, Fallback: fallback})
}

// ExtractPalette decodes the image at path and builds its palette.
func (a *Application) ExtractPalette(path string) (*palette.Palette, error) {
	img, err := palette.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return palette.Extract(img, a.services.IconSize, a.services.Generator)
}

// RunPreview runs the interactive preview for pkg.
func (a *Application) RunPreview(ctx context.Context, pkg string, fallback *color.RGB) error {
	logging.Info("CLI", "Starting preview for %s...", pkg)

	color.Initialize(true)

	// Logs go to the preview while it runs.
	logChan := logging.InitForTUI(a.logLevel)
	defer logging.CloseTUIChannel()

	err := tui.Run(ctx, tui.Options{
		Package:    pkg,
		Resolver:   a.services.Resolver,
		Fallback:   fallback,
		LogChannel: logChan,
	})
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running preview")
		return err
	}
	logging.Info("TUI-Lifecycle", "Preview exited.")
	return nil
}

// Serve runs the MCP server over in and out until ctx is cancelled.
func (a *Application) Serve(ctx context.Context, version string, in io.Reader, out io.Writer) error {
	s := mcpserver.New(mcpserver.Config{
		Version:   version,
		Resolver:  a.services.Resolver,
		Lister:    a.services.Registry,
		IconSize:  a.services.IconSize,
		Generator: a.services.Generator,
	})
	return s.Serve(ctx, in, out)
}
