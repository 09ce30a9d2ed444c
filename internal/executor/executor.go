// Package executor runs the external mdsel CLI as a child process and
// normalizes the outcome into a Result.
//
// The executor never interprets mdsel's output. It captures both streams,
// enforces a timeout with a SIGTERM-then-SIGKILL escalation, and converts
// every failure mode into a populated Result rather than an error: callers
// always get something they can turn into a diagnostic.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/mdseltools/mdselmcp/internal/audit"
	"github.com/mdseltools/mdselmcp/internal/config"
	"github.com/mdseltools/mdselmcp/internal/logger"
)

// mdsel subcommands
const (
	CommandIndex  = "index"
	CommandSelect = "select"
)

// GracePeriod is how long a timed-out process gets between SIGTERM and
// SIGKILL.
const GracePeriod = 5 * time.Second

// Result is the normalized outcome of one mdsel invocation.
// ExitCode is nil for process-level failures: the binary could not be
// spawned, or the process was terminated by a signal.
type Result struct {
	Success  bool
	Stdout   string
	Stderr   string
	ExitCode *int
}

// Executor spawns mdsel processes. Each Execute call gets its own child;
// the executor holds no state across calls and is safe for concurrent use.
type Executor struct {
	binary  string
	timeout time.Duration
}

// New builds an Executor from the resolved configuration.
func New(cfg *config.Config) *Executor {
	return &Executor{binary: cfg.Binary, timeout: cfg.Timeout}
}

// Execute runs `mdsel <command> <args...>` and waits for it to finish.
// The argument vector is passed in array form; nothing is interpreted by
// a shell. The call always returns a Result, never panics, and never
// hangs past the timeout plus grace period.
func (e *Executor) Execute(ctx context.Context, command string, args []string) Result {
	start := time.Now()
	argv := append([]string{command}, args...)

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.binary, argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Graceful termination on context cancellation; os/exec sends SIGKILL
	// on its own once WaitDelay elapses.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = GracePeriod

	logger.Debug("executing mdsel", "binary", e.binary, "argv", argv)
	err := cmd.Run()
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0

	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	switch {
	case err == nil:
		res.Success = true
		code := 0
		res.ExitCode = &code

	case isSpawnError(err):
		res.Stderr = appendDiagnostic(res.Stderr, spawnDiagnostic(err, e.binary))
		logger.Debug("mdsel spawn failed", "error", err)

	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if code := exitErr.ExitCode(); code >= 0 {
				res.ExitCode = &code
			}
			// Signal termination leaves ExitCode nil.
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			res.Stderr = appendDiagnostic(res.Stderr,
				fmt.Sprintf("mdsel %s timed out after %s", command, e.timeout))
		} else if res.Stderr == "" {
			res.Stderr = fmt.Sprintf("mdsel %s failed: %v", command, err)
		}
		logger.Debug("mdsel exited with failure", "command", command, "error", err)
	}

	audit.Log(audit.Entry{
		Kind:       audit.KindExec,
		Command:    command,
		Args:       args,
		ExitCode:   res.ExitCode,
		DurationMs: durationMs,
		Error:      failureText(res),
	})

	return res
}

// isSpawnError reports whether err means the process never started.
func isSpawnError(err error) bool {
	var execErr *exec.Error
	return errors.As(err, &execErr) || errors.Is(err, fs.ErrPermission)
}

// spawnDiagnostic names the spawn failure cause so callers can tell a
// missing binary apart from a permission problem or a normal failure.
func spawnDiagnostic(err error, binary string) string {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("mdsel binary not found: %s", binary)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Sprintf("mdsel binary not executable (permission denied): %s", binary)
	default:
		return fmt.Sprintf("failed to start mdsel (%s): %v", binary, err)
	}
}

// appendDiagnostic adds a diagnostic line to whatever stderr the process
// produced before dying.
func appendDiagnostic(stderr, diag string) string {
	if stderr == "" {
		return diag
	}
	return strings.TrimRight(stderr, "\n") + "\n" + diag
}

// failureText returns the diagnostic for audit entries, empty on success.
func failureText(res Result) string {
	if res.Success {
		return ""
	}
	return res.Stderr
}
