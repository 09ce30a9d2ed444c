// Package cmd implements the CLI commands for mdselmcp.
package cmd

import (
	"github.com/mdseltools/mdselmcp/internal/audit"
	"github.com/mdseltools/mdselmcp/internal/config"
	"github.com/mdseltools/mdselmcp/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	noAuditLog bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mdselmcp",
	Short: "Selector-based Markdown access for coding agents",
	Long: `mdselmcp connects a coding agent to the mdsel CLI.

It serves two MCP tools over stdio (mdsel_index and mdsel_select) that let
an agent fetch Markdown sections by selector instead of reading whole
files, and ships a PreToolUse hook that reminds the agent to use them when
it reads a large Markdown file anyway.

MCP server in ~/.claude/settings.json (or your client's equivalent):
  "mcpServers": {
    "mdsel": {"command": "mdselmcp"}
  }

Read hook:
  "hooks": {
    "PreToolUse": [{
      "matcher": "Read|Bash",
      "hooks": [{"type": "command", "command": "mdselmcp hook"}]
    }]
  }`,
	// Serve MCP over stdio by default when no subcommand is given
	RunE: runServe,
	// Silence usage on errors
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Initialize before running any command
	cobra.OnInitialize(initApp)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVar(&noAuditLog, "no-audit-log", false, "Disable audit logging")
}

// initApp initializes the application (logger, config, audit)
func initApp() {
	logger.Init(logger.Options{Verbose: verbose})

	config.Init()

	// Initialize audit logging (unless disabled)
	audit.Init("", noAuditLog)
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	return verbose
}
