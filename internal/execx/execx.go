package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// CmdResult holds the captured output of a finished subprocess.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner executes a command and returns its captured result. The probe takes
// a Runner rather than calling exec directly so tests can substitute a fake
// interpreter.
type Runner func(ctx context.Context, name string, args ...string) (*CmdResult, error)

// Run executes a command with a timeout taken from the context. A non-zero
// exit is not an error here; callers inspect ExitCode and Stderr.
func Run(ctx context.Context, name string, args ...string) (*CmdResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	result := &CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: duration,
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		err = nil
	}

	if ctx.Err() != nil {
		return result, ctx.Err()
	}

	return result, err
}

// LastLine returns the final non-empty line of s, trimmed. Used to pull the
// exception line off the bottom of a Python traceback.
func LastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
