package mcpserver

import (
	"context"
	"errors"
	"io"

	"appcolors/internal/palette"
	"appcolors/internal/resolver"
	"appcolors/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "MCPServer"

// Lister enumerates the packages of a registry.
type Lister interface {
	Packages() ([]string, error)
}

// Config wires the server to its collaborators.
type Config struct {
	Name    string
	Version string

	Resolver *resolver.Resolver
	// Lister is optional; list_packages is only registered when set.
	Lister    Lister
	IconSize  int
	Generator palette.Generator
}

// Server serves the appcolors tools over MCP.
type Server struct {
	tools *Tools
	mcp   *server.MCPServer
}

// New builds the MCP server and registers its tools.
func New(cfg Config) *Server {
	if cfg.Name == "" {
		cfg.Name = "appcolors"
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	tools := NewTools(cfg.Resolver, cfg.Lister, cfg.IconSize, cfg.Generator)
	s := server.NewMCPServer(
		cfg.Name,
		cfg.Version,
		server.WithToolCapabilities(true),
	)
	for _, t := range tools.ServerTools() {
		s.AddTool(t.Tool, t.Handler)
	}

	return &Server{tools: tools, mcp: s}
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Serve reads requests from in and writes responses to out until ctx is
// cancelled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info(subsystem, "Serving %d tools over stdio", len(s.tools.ServerTools()))
	err := server.NewStdioServer(s.mcp).Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
