package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with the cchk tools and resources
// registered. repoPath is the repository the checks run against.
func NewServer(repoPath, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"cchk",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, repoPath)
	registerResources(s, repoPath)

	return s
}
