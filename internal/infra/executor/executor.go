// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/luciuz/gh-seed/internal/domain"
)

// exitCodeNotRunnable is reported when the program could not be started.
const exitCodeNotRunnable = 127

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command and captures stdout and stderr separately.
// A command that fails to start or exits non-zero yields *domain.CommandError
// carrying both streams.
func (c *Client) Execute(ctx context.Context, cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	err := execCmd.Run()
	result := &domain.ExecResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err == nil {
		return result, nil
	}

	cmdErr := &domain.CommandError{
		Err:      err,
		Args:     cmd.Argv(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCodeNotRunnable,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		cmdErr.ExitCode = exitErr.ExitCode()
	}
	return result, cmdErr
}
