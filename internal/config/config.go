// Package config handles configuration loading and parsing for mdselmcp.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mdseltools/mdselmcp/internal/constants"
	"github.com/mdseltools/mdselmcp/internal/logger"
	"github.com/mdseltools/mdselmcp/internal/wordcount"
)

//go:embed config.toml
var defaultConfig []byte

// Config holds the resolved runtime configuration. It is built once per
// process by Init; components receive it as a value rather than reading
// the environment ad hoc.
type Config struct {
	// Binary is the mdsel executable, a bare name resolved via PATH or an
	// absolute path.
	Binary string
	// Timeout bounds each mdsel invocation.
	Timeout time.Duration
	// MinWords is the word threshold above which the hook attaches its
	// reminder. Always >= 1.
	MinWords int
	// Extensions are the lowercase file extensions (no dot) the hook
	// treats as Markdown.
	Extensions []string
	// ScanBash enables scanning Bash tool commands for Markdown reads.
	ScanBash bool
}

// fileConfig mirrors the TOML layout of config.toml.
type fileConfig struct {
	Mdsel struct {
		Binary    string `toml:"binary"`
		TimeoutMs int    `toml:"timeout_ms"`
	} `toml:"mdsel"`
	Hook struct {
		MinWords   int      `toml:"min_words"`
		Extensions []string `toml:"extensions"`
		ScanBash   *bool    `toml:"scan_bash"`
	} `toml:"hook"`
}

var (
	// globalConfig is the loaded configuration
	globalConfig *Config
	// configInitialized tracks whether config has been loaded
	configInitialized bool
	// configPath records where config was loaded from, for diagnostics
	configPath string
	// initErr records the first load failure, if any
	initErr error
)

// GetConfigDir returns the config directory path.
// Uses MDSELMCP_CONFIG env var if set, otherwise ~/.config/mdselmcp
func GetConfigDir() (string, error) {
	if dir := os.Getenv(constants.EnvConfigDir); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", constants.AppName), nil
}

// EnsureConfigFiles creates the config directory and writes the default
// config file if it doesn't exist.
func EnsureConfigFiles(configDir string) error {
	if err := os.MkdirAll(configDir, constants.DirMode); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(configDir, constants.ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, defaultConfig, constants.FileMode); err != nil {
			return fmt.Errorf("failed to write %s: %w", constants.ConfigFileName, err)
		}
	}

	return nil
}

// Parse builds a Config from TOML data, applying defaults for missing or
// out-of-range fields. Environment overrides are not applied here; see Init.
func Parse(data []byte) (*Config, error) {
	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg := &Config{
		Binary:     "mdsel",
		Timeout:    30 * time.Second,
		MinWords:   wordcount.DefaultMinWords,
		Extensions: []string{"md"},
		ScanBash:   true,
	}

	if raw.Mdsel.Binary != "" {
		cfg.Binary = raw.Mdsel.Binary
	}
	if raw.Mdsel.TimeoutMs > 0 {
		cfg.Timeout = time.Duration(raw.Mdsel.TimeoutMs) * time.Millisecond
	}
	if raw.Hook.MinWords >= 1 {
		cfg.MinWords = raw.Hook.MinWords
	}
	if len(raw.Hook.Extensions) > 0 {
		exts := make([]string, 0, len(raw.Hook.Extensions))
		for _, e := range raw.Hook.Extensions {
			e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
			if e != "" {
				exts = append(exts, e)
			}
		}
		if len(exts) > 0 {
			cfg.Extensions = exts
		}
	}
	if raw.Hook.ScanBash != nil {
		cfg.ScanBash = *raw.Hook.ScanBash
	}

	return cfg, nil
}

// applyEnv layers environment overrides on top of a parsed config.
func applyEnv(cfg *Config) {
	if bin := os.Getenv(constants.EnvBinary); bin != "" {
		cfg.Binary = bin
	}
	if raw := os.Getenv(constants.EnvMinWords); raw != "" {
		cfg.MinWords = wordcount.Threshold(raw)
	}
}

// MatchesExtension reports whether path has one of the configured
// Markdown extensions, compared case-insensitively.
func (c *Config) MatchesExtension(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return false
	}
	for _, e := range c.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// loadEmbeddedDefaults loads the embedded default config file.
func loadEmbeddedDefaults() *Config {
	cfg, _ := Parse(defaultConfig)
	return cfg
}

// Init loads configuration from files, creating defaults if necessary.
// If loading fails, it falls back to embedded defaults. Environment
// overrides are applied last in either case.
func Init() error {
	if configInitialized {
		return initErr
	}

	defer func() {
		applyEnv(globalConfig)
		configInitialized = true
	}()

	configDir, err := GetConfigDir()
	if err != nil {
		logger.Debug("failed to get config dir, using embedded defaults", "error", err)
		globalConfig = loadEmbeddedDefaults()
		initErr = err
		return initErr
	}

	if err := EnsureConfigFiles(configDir); err != nil {
		logger.Debug("failed to ensure config files, using embedded defaults", "error", err)
		globalConfig = loadEmbeddedDefaults()
		initErr = err
		return initErr
	}

	path := filepath.Join(configDir, constants.ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("failed to read config file, using embedded defaults", "path", path, "error", err)
		globalConfig = loadEmbeddedDefaults()
		initErr = fmt.Errorf("failed to read %s: %w", constants.ConfigFileName, err)
		return initErr
	}

	cfg, err := Parse(data)
	if err != nil {
		logger.Debug("failed to parse config, using embedded defaults", "error", err)
		globalConfig = loadEmbeddedDefaults()
		initErr = fmt.Errorf("failed to load config: %w", err)
		return initErr
	}

	globalConfig = cfg
	configPath = path
	logger.Debug("config loaded successfully",
		"path", path,
		"binary", cfg.Binary,
		"min_words", cfg.MinWords)
	return nil
}

// Get returns the current configuration.
// If Init has not been called, it initializes with defaults.
func Get() *Config {
	if !configInitialized {
		Init()
	}
	return globalConfig
}

// GetConfigPath returns the path config was loaded from, or "" when
// embedded defaults are in use.
func GetConfigPath() string {
	return configPath
}

// InitError returns the load failure recorded by Init, if any.
func InitError() error {
	return initErr
}

// Reset resets the configuration state. Used for testing.
func Reset() {
	configInitialized = false
	globalConfig = nil
	configPath = ""
	initErr = nil
}

// GetDefaultConfig returns the embedded default configuration.
func GetDefaultConfig() []byte {
	return defaultConfig
}
