package hook

// Input represents the JSON input received from Claude Code's PreToolUse
// hook. One document arrives on stdin per invocation; the process is
// single-shot and keeps no state between invocations.
//
// See: https://docs.anthropic.com/en/docs/claude-code/hooks
type Input struct {
	SessionID      string        `json:"session_id"`
	TranscriptPath string        `json:"transcript_path"`
	Cwd            string        `json:"cwd"`
	PermissionMode string        `json:"permission_mode"`
	HookEventName  string        `json:"hook_event_name"`
	ToolName       string        `json:"tool_name"`
	ToolInput      ToolInputData `json:"tool_input"`
	ToolUseID      string        `json:"tool_use_id"`
}

// ToolInputData carries the fields this hook cares about from the tool
// being intercepted: file_path for Read, command for Bash.
type ToolInputData struct {
	FilePath string `json:"file_path,omitempty"`
	Command  string `json:"command,omitempty"`
}

// Output is the advisory envelope written to stdout. Continue is always
// true: the hook never blocks the underlying action, it only attaches a
// reminder.
type Output struct {
	Continue      bool   `json:"continue"`
	SystemMessage string `json:"systemMessage,omitempty"`
}

// Result contains the outcome of processing one hook invocation.
// Returned by Process for use by the caller (dry-run output, tests).
type Result struct {
	FilePath  string // File that was measured, if any
	WordCount int    // Measured word count
	Threshold int    // Threshold in effect
	Triggered bool   // Whether the reminder was attached
	Skipped   string // Why no measurement happened, empty when measured
	Output    string // JSON envelope written to stdout
}
