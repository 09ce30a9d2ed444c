package cmd

import (
	"github.com/mdseltools/mdselmcp/internal/audit"
	"github.com/mdseltools/mdselmcp/internal/config"
	"github.com/mdseltools/mdselmcp/internal/logger"
	"github.com/mdseltools/mdselmcp/internal/mcpserver"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mdsel MCP tools over stdio",
	Long: `Serve runs the MCP server on stdin/stdout, exposing the mdsel_index
and mdsel_select tools. This is also the root command's default action.

The server speaks JSON-RPC 2.0 over stdio; all logging goes to stderr.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	defer audit.Close()

	cfg := config.Get()
	logger.Debug("starting MCP server", "binary", cfg.Binary, "timeout", cfg.Timeout)

	s := mcpserver.New(cfg)
	return mcpserver.ServeStdio(s)
}
