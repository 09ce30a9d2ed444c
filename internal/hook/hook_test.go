package hook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdseltools/mdselmcp/internal/audit"
	"github.com/mdseltools/mdselmcp/internal/testutil"
)

func readInput(path string) string {
	return fmt.Sprintf(
		`{"session_id":"s","hook_event_name":%q,"tool_name":"Read","tool_input":{"file_path":%q}}`,
		EventPreToolUse, path)
}

func TestProcessNonMarkdownFile(t *testing.T) {
	cfg := testutil.HookConfig()
	path := testutil.WriteWords(t, t.TempDir(), "notes.txt", 500)

	res := Process(strings.NewReader(readInput(path)), cfg)

	if res.Output != `{"continue":true}` {
		t.Errorf("Output = %q, want bare pass-through", res.Output)
	}
	if res.Triggered {
		t.Error("non-markdown file must never trigger")
	}
}

func TestProcessOverThreshold(t *testing.T) {
	cfg := testutil.HookConfig()
	path := testutil.WriteWords(t, t.TempDir(), "big.md", 201)

	res := Process(strings.NewReader(readInput(path)), cfg)

	if !res.Triggered {
		t.Fatalf("expected trigger, got %+v", res)
	}

	var out Output
	if err := json.Unmarshal([]byte(res.Output), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !out.Continue {
		t.Error("continue must always be true")
	}
	if out.SystemMessage != Reminder {
		t.Errorf("systemMessage = %q, want exact reminder", out.SystemMessage)
	}
}

func TestProcessExactlyAtThreshold(t *testing.T) {
	// The threshold is exclusive: equal word count does not trigger.
	cfg := testutil.HookConfig()
	path := testutil.WriteWords(t, t.TempDir(), "exact.md", 200)

	res := Process(strings.NewReader(readInput(path)), cfg)

	if res.Triggered {
		t.Error("word count equal to the threshold must not trigger")
	}
	if res.Output != `{"continue":true}` {
		t.Errorf("Output = %q", res.Output)
	}
}

func TestProcessUnderThreshold(t *testing.T) {
	cfg := testutil.HookConfig()
	path := testutil.WriteWords(t, t.TempDir(), "small.md", 10)

	res := Process(strings.NewReader(readInput(path)), cfg)

	if res.Triggered {
		t.Error("small file must not trigger")
	}
	if res.WordCount != 10 {
		t.Errorf("WordCount = %d, want 10", res.WordCount)
	}
}

func TestProcessMissingFile(t *testing.T) {
	cfg := testutil.HookConfig()
	path := filepath.Join(t.TempDir(), "does-not-exist.md")

	res := Process(strings.NewReader(readInput(path)), cfg)

	if res.Output != `{"continue":true}` {
		t.Errorf("Output = %q, missing files must pass silently", res.Output)
	}
	if res.Triggered {
		t.Error("missing file must not trigger")
	}
}

func TestProcessCaseInsensitiveExtension(t *testing.T) {
	cfg := testutil.HookConfig()
	path := testutil.WriteWords(t, t.TempDir(), "UPPER.MD", 300)

	res := Process(strings.NewReader(readInput(path)), cfg)

	if !res.Triggered {
		t.Error("extension match must be case-insensitive")
	}
}

func TestProcessCustomThreshold(t *testing.T) {
	cfg := testutil.HookConfig()
	cfg.MinWords = 50
	dir := t.TempDir()

	over := testutil.WriteWords(t, dir, "over.md", 51)
	under := testutil.WriteWords(t, dir, "under.md", 50)

	if res := Process(strings.NewReader(readInput(over)), cfg); !res.Triggered {
		t.Error("51 words must trigger with threshold 50")
	}
	if res := Process(strings.NewReader(readInput(under)), cfg); res.Triggered {
		t.Error("50 words must not trigger with threshold 50")
	}
}

func TestProcessMalformedInput(t *testing.T) {
	cfg := testutil.HookConfig()

	tests := []struct {
		name  string
		input string
	}{
		{"not json", "this is not json"},
		{"empty input", ""},
		{"empty object", "{}"},
		{"wrong types", `{"tool_name":123}`},
		{"missing tool_input", `{"tool_name":"Read"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Process(strings.NewReader(tt.input), cfg)
			if res.Output != `{"continue":true}` {
				t.Errorf("Output = %q, malformed input must fail open", res.Output)
			}
		})
	}
}

func TestProcessOtherTools(t *testing.T) {
	cfg := testutil.HookConfig()
	input := `{"tool_name":"Write","tool_input":{"file_path":"/tmp/big.md"}}`

	res := Process(strings.NewReader(input), cfg)

	if res.Output != `{"continue":true}` {
		t.Errorf("Output = %q, non-read tools must pass through", res.Output)
	}
}

func TestProcessEndToEndEnvelope(t *testing.T) {
	cfg := testutil.HookConfig()
	path := testutil.WriteWords(t, t.TempDir(), "big.md", 250)

	res := Process(strings.NewReader(readInput(path)), cfg)

	want := `{"continue":true,"systemMessage":"This is a Markdown file over the configured size threshold.\nUse mdsel_index and mdsel_select instead of Read."}`
	if res.Output != want {
		t.Errorf("envelope mismatch:\ngot  %s\nwant %s", res.Output, want)
	}
}

func TestProcessBashCommand(t *testing.T) {
	cfg := testutil.HookConfig()
	dir := t.TempDir()
	big := testutil.WriteWords(t, dir, "big.md", 300)
	small := testutil.WriteWords(t, dir, "small.md", 5)

	tests := []struct {
		name      string
		command   string
		triggered bool
	}{
		{"cat oversized markdown", "cat " + big, true},
		{"cat small markdown", "cat " + small, false},
		{"head with flags", "head -n 50 " + big, true},
		{"chained command", "ls && cat " + big, true},
		{"piped reader", "cat " + big + " | grep foo", true},
		{"non-reader command", "wc -l " + big, false},
		{"no markdown argument", "cat /etc/hosts", false},
		{"unparseable command", "cat " + big + " && (", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := fmt.Sprintf(
				`{"tool_name":"Bash","tool_input":{"command":%q}}`, tt.command)
			res := Process(strings.NewReader(input), cfg)
			if res.Triggered != tt.triggered {
				t.Errorf("Triggered = %v, want %v (%+v)", res.Triggered, tt.triggered, res)
			}
		})
	}
}

func TestProcessBashScanningDisabled(t *testing.T) {
	cfg := testutil.HookConfig()
	cfg.ScanBash = false
	big := testutil.WriteWords(t, t.TempDir(), "big.md", 300)

	input := fmt.Sprintf(`{"tool_name":"Bash","tool_input":{"command":"cat %s"}}`, big)
	res := Process(strings.NewReader(input), cfg)

	if res.Triggered {
		t.Error("bash scanning must respect the config switch")
	}
}

func TestProcessAuditsHookIdentifiers(t *testing.T) {
	cfg := testutil.HookConfig()
	path := testutil.WriteWords(t, t.TempDir(), "big.md", 250)

	logPath := filepath.Join(t.TempDir(), "audit.log")
	if err := audit.Init(logPath, false); err != nil {
		t.Fatalf("audit.Init() error = %v", err)
	}
	defer audit.Reset()

	input := fmt.Sprintf(
		`{"session_id":"s9","tool_use_id":"tu9","hook_event_name":%q,"tool_name":"Read","tool_input":{"file_path":%q}}`,
		EventPreToolUse, path)
	res := Process(strings.NewReader(input), cfg)
	if !res.Triggered {
		t.Fatalf("expected trigger, got %+v", res)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}

	var entry audit.Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("audit entry is not valid JSON: %v", err)
	}
	if entry.SessionID != "s9" || entry.ToolUseID != "tu9" {
		t.Errorf("session/tool use IDs not propagated: %+v", entry)
	}
	if entry.ToolName != "Read" || !entry.Triggered {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestReminderBytes(t *testing.T) {
	lines := strings.Split(Reminder, "\n")
	if len(lines) != 2 {
		t.Fatalf("reminder must be exactly two lines, got %d", len(lines))
	}
	if lines[0] != "This is a Markdown file over the configured size threshold." {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "Use mdsel_index and mdsel_select instead of Read." {
		t.Errorf("line 2 = %q", lines[1])
	}
}
