package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"appcolors/internal/color"
	"appcolors/internal/palette"
	"appcolors/internal/resolver"
	"appcolors/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tools implements the MCP tool handlers.
type Tools struct {
	resolver  *resolver.Resolver
	lister    Lister
	iconSize  int
	generator palette.Generator
}

// NewTools creates the tool handlers.
func NewTools(r *resolver.Resolver, lister Lister, iconSize int, gen palette.Generator) *Tools {
	if gen == nil {
		gen = palette.NewMedianCut(palette.DefaultMaxColors)
	}
	return &Tools{resolver: r, lister: lister, iconSize: iconSize, generator: gen}
}

// ServerTools returns every tool paired with its handler.
func (t *Tools) ServerTools() []server.ServerTool {
	tools := []server.ServerTool{
		{
			Tool: mcp.NewTool("resolve_app_color",
				mcp.WithDescription("Resolve the primary color of an installed application from its themes or launcher icon"),
				mcp.WithString("package",
					mcp.Required(),
					mcp.Description("Package name, e.g. com.example.mail"),
				),
				mcp.WithString("fallback",
					mcp.Description("Hex color returned when nothing else resolves, e.g. #607D8B"),
				),
			),
			Handler: t.HandleResolve,
		},
		{
			Tool: mcp.NewTool("extract_palette",
				mcp.WithDescription("Extract the categorized color palette of an image file"),
				mcp.WithString("path",
					mcp.Required(),
					mcp.Description("Path to a PNG, JPEG, GIF or WebP image"),
				),
			),
			Handler: t.HandleExtractPalette,
		},
	}
	if t.lister != nil {
		tools = append(tools, server.ServerTool{
			Tool: mcp.NewTool("list_packages",
				mcp.WithDescription("List the packages known to the registry"),
			),
			Handler: t.HandleListPackages,
		})
	}
	return tools
}

// resolveResult is the JSON body of resolve_app_color.
type resolveResult struct {
	Package string          `json:"package"`
	Found   bool            `json:"found"`
	Color   *color.RGB      `json:"color,omitempty"`
	Source  resolver.Source `json:"source"`
}

// HandleResolve handles resolve_app_color.
func (t *Tools) HandleResolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pkg, err := request.RequireString("package")
	if err != nil {
		return mcp.NewToolResultError("package parameter is required"), nil
	}

	req := resolver.Request{Package: pkg}
	if raw, ok := request.GetArguments()["fallback"].(string); ok && raw != "" {
		fb, err := color.ParseHex(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid fallback: %v", err)), nil
		}
		req.Fallback = &fb
	}

	res, err := t.resolver.Resolve(ctx, req)
	if err != nil {
		logging.Error(subsystem, err, "Failed to resolve %s", pkg)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve %s: %v", pkg, err)), nil
	}

	out := resolveResult{Package: pkg, Found: res.Found, Source: res.Source}
	if res.Found {
		out.Color = &res.Color
	}
	return jsonResult(out)
}

// HandleExtractPalette handles extract_palette.
func (t *Tools) HandleExtractPalette(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path parameter is required"), nil
	}

	img, err := palette.DecodeFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read %s: %v", path, err)), nil
	}
	p, err := palette.Extract(img, t.iconSize, t.generator)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to extract palette: %v", err)), nil
	}
	return jsonResult(palette.Summarize(p))
}

// HandleListPackages handles list_packages.
func (t *Tools) HandleListPackages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pkgs, err := t.lister.Packages()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list packages: %v", err)), nil
	}
	if len(pkgs) == 0 {
		return mcp.NewToolResultText("No packages available"), nil
	}
	return jsonResult(pkgs)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
