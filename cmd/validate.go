package cmd

import (
	"fmt"
	"strings"

	"github.com/mdseltools/mdselmcp/internal/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and show resolved settings",
	Long: `Validate loads the mdselmcp configuration and displays the settings that
will actually be used, after environment overrides.

This is useful for:
- Checking that your config.toml syntax is correct
- Seeing the effective word threshold and mdsel binary
- Debugging MDSEL_MIN_WORDS / MDSEL_BIN overrides`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if cfg == nil {
		return fmt.Errorf("failed to load configuration")
	}

	if err := config.InitError(); err != nil {
		fmt.Printf("Configuration could not be loaded (%v); using embedded defaults.\n", err)
	} else if path := config.GetConfigPath(); path != "" {
		fmt.Printf("Configuration valid: %s\n", path)
	} else {
		fmt.Println("Configuration valid (embedded defaults).")
	}
	fmt.Println()

	fmt.Printf("mdsel binary:    %s\n", cfg.Binary)
	fmt.Printf("timeout:         %s\n", cfg.Timeout)
	fmt.Printf("word threshold:  %d\n", cfg.MinWords)
	fmt.Printf("extensions:      %s\n", strings.Join(cfg.Extensions, ", "))
	fmt.Printf("scan bash:       %t\n", cfg.ScanBash)

	return nil
}
