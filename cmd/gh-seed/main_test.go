package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/luciuz/gh-seed/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestReportError_CommandError(t *testing.T) {
	var buf bytes.Buffer
	cmdErr := &domain.CommandError{
		Args:     []string{"gh", "issue", "create", "--title", "T"},
		Stdout:   "",
		Stderr:   "could not add label: 'area/x' not found\n",
		ExitCode: 1,
	}
	err := fmt.Errorf("create issue %q: %w", "T", cmdErr)

	code := reportError(&buf, err)

	assert.Equal(t, 1, code)
	out := buf.String()
	assert.Contains(t, out, "CMD FAILED: gh issue create --title T\n")
	assert.Contains(t, out, "could not add label: 'area/x' not found\n")
	assert.Contains(t, out, `Error: create issue "T"`)
}

func TestReportError_PropagatesExitCode(t *testing.T) {
	var buf bytes.Buffer

	code := reportError(&buf, &domain.CommandError{Args: []string{"gh", "label", "list"}, ExitCode: 4})

	assert.Equal(t, 4, code)
}

func TestReportError_NotAuthenticated(t *testing.T) {
	var buf bytes.Buffer
	cmdErr := &domain.CommandError{
		Args:     []string{"gh", "auth", "status"},
		Stderr:   "You are not logged into any GitHub hosts.",
		ExitCode: 1,
	}
	err := fmt.Errorf("%w: %w", domain.ErrNotAuthenticated, cmdErr)

	code := reportError(&buf, err)

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "CMD FAILED: gh auth status")
	assert.Contains(t, buf.String(), "ERROR: gh not authenticated. Run: gh auth login\n")
}

func TestReportError_PlainError(t *testing.T) {
	var buf bytes.Buffer

	code := reportError(&buf, errors.New("boom"))

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: boom\n", buf.String())
}
