// ABOUTME: MCP server initialization and configuration for haven.
// ABOUTME: Sets up server with wellness journal tools for AI agent access.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/haven/internal/app"
)

// Server wraps the MCP server with the wellness journal application.
type Server struct {
	mcp *gomcp.Server
	app *app.App
}

// NewServer creates an MCP server exposing mood, journal, trend, and chat tools.
func NewServer(application *app.App) (*Server, error) {
	if application == nil {
		return nil, fmt.Errorf("app is required")
	}

	mcpServer := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "haven",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp: mcpServer,
		app: application,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}
