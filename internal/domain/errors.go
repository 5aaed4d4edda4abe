package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrNotAuthenticated = errors.New("gh not authenticated")
	ErrInvalidMode      = errors.New("invalid mode (expected labels, milestones, issues or all)")
	ErrDocumentNotFound = errors.New("document not found")
	ErrNotGitRepository = errors.New("not a git repository (or any of the parent directories)")
	ErrInvalidRepo      = errors.New("invalid repository (expected OWNER/NAME)")
)

// AuthHint is printed when the tracker session is not authenticated.
const AuthHint = "Run: gh auth login"

// CommandError reports a failed external command with its captured output.
// Fields are ordered to minimize memory padding.
type CommandError struct {
	Err      error
	Stdout   string
	Stderr   string
	Args     []string
	ExitCode int
}

// Error implements error.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed (exit %d): %s", e.ExitCode, strings.Join(e.Args, " "))
}

// Unwrap returns the underlying execution error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// CommandLine returns the command as a single space-joined line.
func (e *CommandError) CommandLine() string {
	return strings.Join(e.Args, " ")
}
