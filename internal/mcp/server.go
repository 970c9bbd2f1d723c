// Package mcp exposes the project catalog to MCP clients as read-only tools.
package mcp

import (
	"context"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"engfolio.dev/internal/config"
	"engfolio.dev/internal/services"
)

// Server hosts the catalog tools
type Server struct {
	mcpServer *server.MCPServer
	projects  *services.ProjectService
	icons     *services.IconResolver
	cfg       *config.Config
}

// NewServer creates a new Server over the content snapshot in cfg
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(cfg.MCP.Name, config.Version),
		projects:  services.NewProjectService(cfg.Catalog),
		icons:     services.NewIconResolver(cfg.Skills),
		cfg:       cfg,
	}

	s.registerProjectTools()
	s.registerSkillTools()

	return s
}

// Serve runs the server over stdio until ctx is cancelled or in closes
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	slog.Info("starting MCP server", "name", s.cfg.MCP.Name, "transport", "stdio")
	return server.NewStdioServer(s.mcpServer).Listen(ctx, in, out)
}
