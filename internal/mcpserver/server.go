// Package mcpserver wires the mdsel tools into an MCP stdio server.
//
// This is the composition root for the serve path: it builds the executor
// from configuration, hangs the tool adapter off it, and registers the two
// tool definitions with the mcp-go server. Communication is JSON-RPC 2.0
// over stdin/stdout, so no code in this path may write to stdout directly.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mdseltools/mdselmcp/internal/config"
	"github.com/mdseltools/mdselmcp/internal/constants"
	"github.com/mdseltools/mdselmcp/internal/executor"
	"github.com/mdseltools/mdselmcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

const instructions = `mdsel gives selector-based access to Markdown documents.
Call mdsel_index to list a file's headings with their selectors, then
mdsel_select to fetch only the sections you need. Prefer these tools over
reading entire Markdown files.`

// New creates the MCP server with both mdsel tools registered.
func New(cfg *config.Config) *server.MCPServer {
	adapter := tools.NewAdapter(executor.New(cfg))

	s := server.NewMCPServer(
		constants.AppName,
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	s.AddTool(tools.IndexTool(), handler(adapter))
	s.AddTool(tools.SelectTool(), handler(adapter))

	return s
}

// handler adapts the dispatcher to the mcp-go handler signature. Tool
// errors travel inside the result (isError), never as Go errors, so the
// agent always receives a structured response.
func handler(a *tools.Adapter) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return a.Call(ctx, req.Params.Name, req.GetArguments()), nil
	}
}

// ServeStdio runs the server over stdin/stdout until the client hangs up.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
