package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cchk/cchk/internal/adapters/outbound/config"
)

// registerResources registers all cchk MCP resources on the given server.
func registerResources(s *server.MCPServer, repoPath string) {
	// cchk://config - the effective configuration
	s.AddResource(
		mcplib.NewResource(
			"cchk://config",
			"Effective Configuration",
			mcplib.WithResourceDescription("The resolved configuration the checks run with (defaults, config file and environment merged)"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(repoPath),
	)
}

func handleConfigResource(repoPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(repoPath, "", nil)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "cchk://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
