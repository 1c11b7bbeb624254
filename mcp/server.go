package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/dunwich/arkham-central-mcp/internal/arkham"
)

const (
	serverName    = "arkham-central-mcp"
	serverVersion = "1.0.0"
)

// Serve starts the MCP stdio server with all tools registered.
func Serve(svc *arkham.Service) error {
	return server.ServeStdio(newServer(svc))
}

func newServer(svc *arkham.Service) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	registerTools(s, svc)
	return s
}
