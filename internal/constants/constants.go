// Package constants defines shared constants used across the mdselmcp codebase.
package constants

import "os"

// File permissions
const (
	DirMode  os.FileMode = 0755
	FileMode os.FileMode = 0644
)

// Environment variables
const (
	EnvConfigDir = "MDSELMCP_CONFIG"
	EnvMinWords  = "MDSEL_MIN_WORDS"
	EnvBinary    = "MDSEL_BIN"
)

// Application paths
const (
	AppName        = "mdselmcp"
	ConfigFileName = "config.toml"
)

// MCP tool names
const (
	ToolIndex  = "mdsel_index"
	ToolSelect = "mdsel_select"
)
