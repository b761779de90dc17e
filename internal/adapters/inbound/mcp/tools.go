package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cchk/cchk/internal/adapters/outbound/config"
	"github.com/cchk/cchk/internal/adapters/outbound/gitinfo"
	"github.com/cchk/cchk/internal/application"
	"github.com/cchk/cchk/internal/domain"
)

// registerTools registers all cchk MCP tools on the given server.
func registerTools(s *server.MCPServer, repoPath string) {
	s.AddTool(
		mcplib.NewTool("cchk_check_commit",
			mcplib.WithDescription("Validate a commit message against the repository's conventions. Returns the per-rule report as JSON."),
			mcplib.WithString("message",
				mcplib.Description("Commit message to validate (defaults to the HEAD commit)"),
			),
		),
		handleCheckCommit(repoPath),
	)

	s.AddTool(
		mcplib.NewTool("cchk_check_branch",
			mcplib.WithDescription("Validate a branch name against the repository's conventions. Returns the per-rule report as JSON."),
			mcplib.WithString("name",
				mcplib.Description("Branch name to validate (defaults to the checked-out branch)"),
			),
		),
		handleCheckBranch(repoPath),
	)

	s.AddTool(
		mcplib.NewTool("cchk_check_author",
			mcplib.WithDescription("Validate an author identity against the identity rules. Returns the per-rule report as JSON."),
			mcplib.WithString("name",
				mcplib.Description("Author name (defaults to the HEAD author)"),
			),
			mcplib.WithString("email",
				mcplib.Description("Author email (defaults to the HEAD author)"),
			),
		),
		handleCheckAuthor(repoPath),
	)
}

func runScope(repoPath string, scope domain.Scope, in application.Input) (*mcplib.CallToolResult, error) {
	cfg, err := config.New().Load(repoPath, "", nil)
	if err != nil {
		return errorResult(fmt.Sprintf("loading config: %v", err)), nil
	}

	svc := application.NewCheckService(gitinfo.New(repoPath))
	report, _, err := svc.Check(cfg, scope, in)
	if err != nil {
		return errorResult(fmt.Sprintf("check failed: %v", err)), nil
	}
	return jsonResult(report)
}

func handleCheckCommit(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		message, _ := request.GetArguments()["message"].(string)
		return runScope(repoPath, domain.Scope{Commit: true}, application.Input{Message: message})
	}
}

func handleCheckBranch(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, _ := request.GetArguments()["name"].(string)
		return runScope(repoPath, domain.Scope{Branch: true}, application.Input{Branch: name})
	}
}

func handleCheckAuthor(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		name, _ := args["name"].(string)
		email, _ := args["email"].(string)
		return runScope(repoPath, domain.Scope{Author: true}, application.Input{AuthorName: name, AuthorEmail: email})
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
