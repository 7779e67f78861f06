// Package runner is the sole point of interaction with the operating
// environment for textual facts. Every external command failure collapses
// into a failed Result that callers substitute with a sentinel value.
package runner

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"hwscan/internal/logging"
)

// Sentinel values substituted when a fact cannot be obtained or parsed.
const (
	// NotAvailable replaces the output of a command that failed to run.
	NotAvailable = "Not available"
	// Unknown replaces a numeric field whose source text did not parse.
	Unknown = "Unknown"
)

// Result is the outcome of one external command invocation.
type Result struct {
	Text string
	OK   bool
}

// OrSentinel returns the trimmed command output, or "Not available" when
// the command failed.
func (r Result) OrSentinel() string {
	if !r.OK {
		return NotAvailable
	}
	return r.Text
}

// Runner executes a host shell command line and captures trimmed stdout.
type Runner interface {
	Output(ctx context.Context, command string) Result
}

// ShellRunner runs command lines through the platform default shell
// (sh -c on unix, cmd /C on windows). A Timeout of zero disables the
// bounded wait; a timed-out command degrades like any other failure.
type ShellRunner struct {
	Timeout time.Duration
	Logger  *logging.Logger
}

// NewShellRunner creates a runner with the given per-command timeout.
func NewShellRunner(timeout time.Duration, logger *logging.Logger) *ShellRunner {
	return &ShellRunner{Timeout: timeout, Logger: logger}
}

// Output runs the command and returns its trimmed stdout. Stderr is
// discarded. Any failure (missing shell, non-zero exit, timeout) yields a
// failed Result; it is logged at debug level only, never surfaced.
func (s *ShellRunner) Output(ctx context.Context, command string) Result {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	name, args := shellCommand(command)
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		if s.Logger != nil {
			s.Logger.Debug("command.failed", "External command failed", map[string]any{
				"command": command,
				"error":   err.Error(),
			})
		}
		return Result{}
	}
	return Result{Text: strings.TrimSpace(string(out)), OK: true}
}

func shellCommand(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}
