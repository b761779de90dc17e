package cli

import (
	mcpadapter "github.com/cchk/cchk/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the cchk MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start cchk MCP server (stdio)",
		Long: "Start the cchk MCP server using stdio transport. This lets AI coding " +
			"assistants validate commit messages and branch names before committing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = "."
			}
			s := mcpadapter.NewServer(path, version)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Repository path (defaults to current working directory)")

	return cmd
}
