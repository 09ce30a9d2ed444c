// Package audit provides audit logging for mdselmcp decisions.
//
// Two kinds of entries are written: one per hook decision (did a Markdown
// read get the reminder, and why) and one per mdsel subprocess invocation.
// Entries are JSON lines appended to a single log file. When the file
// grows past a size cap it is rotated into a zstd-compressed archive next
// to it.
package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/mdseltools/mdselmcp/internal/constants"
	"github.com/mdseltools/mdselmcp/internal/logger"
)

// Entry kinds
const (
	KindHook = "hook"
	KindExec = "exec"
)

// Version is the audit entry format version.
const Version = 1

// TimestampFormat is the format used for audit log timestamps.
const TimestampFormat = "2006-01-02T15:04:05.0Z07:00"

// maxLogBytes is the rotation threshold for the active log file.
const maxLogBytes = 10 << 20

// Entry represents a single audit log entry (v1 format).
type Entry struct {
	Version    int     `json:"version"`
	Kind       string  `json:"kind"`
	Timestamp  string  `json:"timestamp"`
	DurationMs float64 `json:"duration_ms"`

	// Hook fields
	SessionID string `json:"session_id,omitempty"`
	ToolUseID string `json:"tool_use_id,omitempty"`
	ToolName  string `json:"tool_name,omitempty"`
	FilePath  string `json:"file_path,omitempty"`
	WordCount int    `json:"word_count,omitempty"`
	Threshold int    `json:"threshold,omitempty"`
	Triggered bool   `json:"triggered,omitempty"`
	Skipped   string `json:"skipped,omitempty"`

	// Exec fields
	Command  string   `json:"command,omitempty"`
	Args     []string `json:"args,omitempty"`
	ExitCode *int     `json:"exit_code,omitempty"`

	Error string `json:"error,omitempty"`
}

var (
	auditFile *os.File
	auditPath string
	mu        sync.Mutex
	enabled   bool
)

// DefaultLogPath returns the default audit log path
// (~/.local/share/mdselmcp/audit.log)
func DefaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", constants.AppName, "audit.log"), nil
}

// Init initializes the audit log. If path is empty, uses the default path.
// Pass disable=true to turn audit logging off.
func Init(path string, disable bool) error {
	mu.Lock()
	defer mu.Unlock()

	if disable {
		enabled = false
		return nil
	}

	if path == "" {
		var err error
		path, err = DefaultLogPath()
		if err != nil {
			logger.Debug("failed to get default audit log path", "error", err)
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirMode); err != nil {
		logger.Debug("failed to create audit log directory", "error", err)
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.FileMode)
	if err != nil {
		logger.Debug("failed to open audit log file", "error", err)
		return err
	}

	auditFile = f
	auditPath = path
	enabled = true
	logger.Debug("audit logging initialized", "path", path)
	return nil
}

// Close closes the audit log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if auditFile != nil {
		err := auditFile.Close()
		auditFile = nil
		enabled = false
		return err
	}
	return nil
}

// Log writes an entry to the audit log.
// If audit logging is not initialized or disabled, this is a no-op.
func Log(entry Entry) error {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || auditFile == nil {
		return nil
	}

	entry.Version = Version
	entry.Timestamp = time.Now().UTC().Format(TimestampFormat)

	data, err := json.Marshal(entry)
	if err != nil {
		logger.Debug("failed to marshal audit entry", "error", err)
		return err
	}

	if _, err := auditFile.Write(append(data, '\n')); err != nil {
		logger.Debug("failed to write audit entry", "error", err)
		return err
	}

	return rotateIfNeeded()
}

// rotateIfNeeded compresses the active log into a timestamped .zst archive
// once it exceeds maxLogBytes, then truncates it. Callers hold mu.
func rotateIfNeeded() error {
	info, err := auditFile.Stat()
	if err != nil || info.Size() <= maxLogBytes {
		return err
	}

	archive := fmt.Sprintf("%s.%s.zst", auditPath, time.Now().UTC().Format("20060102T150405"))
	if err := compressTo(auditPath, archive); err != nil {
		logger.Debug("audit log rotation failed", "error", err)
		return err
	}

	if err := auditFile.Truncate(0); err != nil {
		return err
	}
	if _, err := auditFile.Seek(0, io.SeekStart); err != nil {
		return err
	}
	logger.Debug("audit log rotated", "archive", archive)
	return nil
}

// compressTo writes a zstd-compressed copy of src at dst.
func compressTo(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FileMode)
	if err != nil {
		return err
	}
	defer out.Close()

	zw, err := zstd.NewWriter(out)
	if err != nil {
		return err
	}
	if _, err := io.Copy(zw, in); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// IsEnabled returns whether audit logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Reset resets the audit state. Used for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	if auditFile != nil {
		auditFile.Close()
	}
	auditFile = nil
	auditPath = ""
	enabled = false
}
