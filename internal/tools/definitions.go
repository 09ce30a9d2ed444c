package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mdseltools/mdselmcp/internal/constants"
)

// Tool descriptions are part of the external contract: they steer the
// agent away from reading whole Markdown files with the generic Read tool.

const indexDescription = `List the heading structure of one or more Markdown files as selector-addressable entries.

Each heading is printed with the selector (e.g. "h2.3") that addresses it.
ALWAYS call this first to discover selectors, then fetch only the sections
you need with mdsel_select. For Markdown files of any real size, prefer
mdsel_index + mdsel_select over reading the whole file with Read: it keeps
the context small and focused.`

const selectDescription = `Print the content of specific Markdown sections addressed by a selector expression.

Selectors (e.g. "h2.0") come from mdsel_index, so call that first. Use this
instead of Read for large Markdown files so only the relevant sections
enter the context.`

// IndexTool returns the MCP definition of the mdsel_index operation.
func IndexTool() mcp.Tool {
	return mcp.NewTool(constants.ToolIndex,
		mcp.WithDescription(indexDescription),
		mcp.WithArray("files",
			mcp.Required(),
			mcp.Description("Markdown file paths to index, in order"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// SelectTool returns the MCP definition of the mdsel_select operation.
func SelectTool() mcp.Tool {
	return mcp.NewTool(constants.ToolSelect,
		mcp.WithDescription(selectDescription),
		mcp.WithString("selector",
			mcp.Required(),
			mcp.Description(`Selector expression identifying the sections to print, e.g. "h2.0"`),
		),
		mcp.WithArray("files",
			mcp.Required(),
			mcp.Description("Markdown file paths to select from, in order"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}
