package domain

import "context"

// Tracker is the capability set the synchronizer needs from the remote
// issue tracker. List methods return sync keys only.
type Tracker interface {
	// CheckAuth fails when the tracker session is not authenticated.
	CheckAuth(ctx context.Context) error

	// ListLabels returns the names of all labels defined remotely.
	ListLabels(ctx context.Context) ([]string, error)

	// CreateLabel creates a label.
	CreateLabel(ctx context.Context, label Label) error

	// ListMilestones returns the titles of all milestones, open and closed.
	ListMilestones(ctx context.Context) ([]string, error)

	// CreateMilestone creates a milestone.
	CreateMilestone(ctx context.Context, milestone Milestone) error

	// ListIssues returns the titles of up to limit issues, open and closed.
	ListIssues(ctx context.Context, limit int) ([]string, error)

	// CreateIssue creates an issue.
	CreateIssue(ctx context.Context, issue Issue) error

	// DescribeCreateIssue returns the command CreateIssue would run.
	// Used by dry-run.
	DescribeCreateIssue(issue Issue) string
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs the command and returns its captured output.
	// A non-zero exit is reported as *CommandError.
	Execute(ctx context.Context, cmd *ExecCommand) (*ExecResult, error)
}

// DocumentReader reads project documents by path relative to the docs root.
type DocumentReader interface {
	ReadDocument(name string) (string, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over defaults.
	Load() (*Config, error)
}

// Logger provides leveled diagnostic logging.
// category groups related entries (e.g. "labels", "gh").
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// SyncReporter receives per-record progress as a phase runs.
type SyncReporter interface {
	// Created is called after a record was created remotely.
	Created(phase Phase, key string)

	// Skipped is called for a record that already exists remotely.
	Skipped(phase Phase, key string)

	// Planned is called in dry-run with the command that would have run.
	Planned(phase Phase, command string)
}

// NopReporter discards progress.
type NopReporter struct{}

func (NopReporter) Created(Phase, string) {}
func (NopReporter) Skipped(Phase, string) {}
func (NopReporter) Planned(Phase, string) {}
