package cmd

import (
	"fmt"
	"os"

	"github.com/mdseltools/mdselmcp/internal/audit"
	"github.com/mdseltools/mdselmcp/internal/config"
	"github.com/mdseltools/mdselmcp/internal/hook"
	"github.com/spf13/cobra"
)

var hookDryRun bool

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Run the PreToolUse Markdown read hook",
	Long: `Hook reads a PreToolUse JSON envelope from stdin and writes an advisory
envelope to stdout. When the intercepted read targets a Markdown file over
the word threshold, the output carries a systemMessage pointing the agent
at mdsel_index and mdsel_select.

The hook is advisory-only: it always emits {"continue":true} and always
exits 0, no matter what goes wrong internally.`,
	Run: runHook,
}

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.Flags().BoolVar(&hookDryRun, "dry-run", false, "Print the decision to stderr instead of the JSON envelope")
}

// runHook processes stdin and emits the envelope. Exit status is 0 on
// every path; hook.Process never fails.
func runHook(cmd *cobra.Command, args []string) {
	defer audit.Close()

	result := hook.Process(os.Stdin, config.Get())

	if hookDryRun {
		if result.Triggered {
			fmt.Fprintf(os.Stderr, "TRIGGERED: %s (%d words > threshold %d)\n",
				result.FilePath, result.WordCount, result.Threshold)
		} else if result.Skipped != "" {
			fmt.Fprintf(os.Stderr, "SKIPPED: %s\n", result.Skipped)
		} else {
			fmt.Fprintf(os.Stderr, "PASSED: %s (%d words <= threshold %d)\n",
				result.FilePath, result.WordCount, result.Threshold)
		}
		return
	}

	fmt.Println(result.Output)
}
