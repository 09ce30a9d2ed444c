// Package hook implements the Markdown read interception for mdselmcp.
//
// The hook runs once per intercepted tool call: it reads a JSON envelope
// from stdin, decides whether the target is a Markdown file over the word
// threshold, and writes an envelope to stdout. It is advisory-only and
// fail-open: every internal fault still produces {"continue":true} and
// exit status 0, because surfacing file-access errors is the intercepted
// tool's job, not this hook's.
package hook

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/mdseltools/mdselmcp/internal/audit"
	"github.com/mdseltools/mdselmcp/internal/config"
	"github.com/mdseltools/mdselmcp/internal/logger"
	"github.com/mdseltools/mdselmcp/internal/wordcount"
)

// Tool names
const (
	ToolNameRead = "Read"
	ToolNameBash = "Bash"
)

// Hook event names
const EventPreToolUse = "PreToolUse"

// Reminder is the exact advisory text attached when a Markdown file
// exceeds the threshold. Capitalization, punctuation, and the line break
// are an external contract; never alter them.
const Reminder = "This is a Markdown file over the configured size threshold.\n" +
	"Use mdsel_index and mdsel_select instead of Read."

// passOutput is the unmodified envelope emitted on every non-trigger path.
const passOutput = `{"continue":true}`

// Process reads one hook envelope from r and returns the decision. It
// never returns an error and never panics past its boundary: any fault
// collapses to the pass-through envelope.
func Process(r io.Reader, cfg *config.Config) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("hook fault swallowed", "panic", rec)
			result = Result{Skipped: "internal error", Output: passOutput}
		}
	}()
	return process(r, cfg)
}

func process(r io.Reader, cfg *config.Config) Result {
	start := time.Now()

	rawBytes, err := io.ReadAll(r)
	if err != nil {
		logger.Debug("failed to read input", "error", err)
		return Result{Skipped: "unreadable input", Output: passOutput}
	}

	var input Input
	if err := json.Unmarshal(rawBytes, &input); err != nil {
		logger.Debug("failed to decode input", "error", err)
		return Result{Skipped: "invalid input", Output: passOutput}
	}

	result := decide(input, cfg)

	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	audit.Log(audit.Entry{
		Kind:       audit.KindHook,
		SessionID:  input.SessionID,
		ToolUseID:  input.ToolUseID,
		ToolName:   input.ToolName,
		FilePath:   result.FilePath,
		WordCount:  result.WordCount,
		Threshold:  result.Threshold,
		Triggered:  result.Triggered,
		Skipped:    result.Skipped,
		DurationMs: durationMs,
	})

	return result
}

// decide applies the extension filter and threshold check for the
// intercepted tool.
func decide(input Input, cfg *config.Config) Result {
	switch input.ToolName {
	case ToolNameRead:
		return measure(input.ToolInput.FilePath, cfg)

	case ToolNameBash:
		if !cfg.ScanBash {
			return Result{Skipped: "bash scanning disabled", Output: passOutput}
		}
		for _, path := range ScanCommand(input.ToolInput.Command, cfg) {
			if res := measure(path, cfg); res.Triggered {
				return res
			}
		}
		return Result{Skipped: "no oversized markdown read", Output: passOutput}

	default:
		return Result{Skipped: "not a read tool", Output: passOutput}
	}
}

// measure reads path and applies the threshold. Unreadable files pass
// silently: the intercepted tool will surface its own error.
func measure(path string, cfg *config.Config) Result {
	if path == "" || !cfg.MatchesExtension(path) {
		return Result{Skipped: "not markdown", Output: passOutput}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("failed to read target file", "path", path, "error", err)
		return Result{FilePath: path, Skipped: "file unreadable", Output: passOutput}
	}

	count := wordcount.Count(string(content))
	threshold := cfg.MinWords

	res := Result{
		FilePath:  path,
		WordCount: count,
		Threshold: threshold,
	}

	// Strict inequality: a file exactly at the threshold passes.
	if count > threshold {
		res.Triggered = true
		res.Output = formatOutput(Reminder)
		logger.Debug("reminder attached", "path", path, "words", count, "threshold", threshold)
	} else {
		res.Output = passOutput
	}

	return res
}

// formatOutput serializes the advisory envelope. Marshal failure falls
// back to the pass-through envelope; the hook must always emit something.
func formatOutput(systemMessage string) string {
	out := Output{Continue: true, SystemMessage: systemMessage}
	data, err := json.Marshal(out)
	if err != nil {
		logger.Debug("failed to marshal hook output", "error", err)
		return passOutput
	}
	return string(data)
}
