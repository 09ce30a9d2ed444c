// mdselmcp - selector-based Markdown access for coding agents
//
// mdselmcp proxies the mdsel CLI as two MCP tools (mdsel_index and
// mdsel_select) over stdio, and ships a PreToolUse hook that reminds the
// agent to use them instead of reading large Markdown files whole.
//
// MCP server in ~/.claude/settings.json (or your client's equivalent):
//
//	"mcpServers": {
//	  "mdsel": {"command": "mdselmcp"}
//	}
//
// Read hook:
//
//	"hooks": {
//	  "PreToolUse": [{
//	    "matcher": "Read|Bash",
//	    "hooks": [{"type": "command", "command": "mdselmcp hook"}]
//	  }]
//	}
//
// Test:
//
//	echo '{"tool_name": "Read", "tool_input": {"file_path": "README.md"}}' | mdselmcp hook
package main

import (
	"os"

	"github.com/mdseltools/mdselmcp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
