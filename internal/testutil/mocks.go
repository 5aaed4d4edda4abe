// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/luciuz/gh-seed/internal/domain"
)

// FakeTracker is an in-memory domain.Tracker.
// Created records are added to the remote state so repeated runs see them.
// Fields are ordered to minimize memory padding.
type FakeTracker struct {
	AuthErr            error
	ListLabelsErr      error
	ListMilestonesErr  error
	ListIssuesErr      error
	CreateLabelErr     error
	CreateMilestoneErr error
	CreateIssueErr     error
	// FailIssueTitle makes CreateIssue fail only for this title.
	FailIssueTitle string

	Labels     []string
	Milestones []string
	Issues     []string

	// Calls records every call in order, e.g. "list-labels", "create-label:area/x".
	Calls []string

	CreatedLabels     []domain.Label
	CreatedMilestones []domain.Milestone
	CreatedIssues     []domain.Issue

	LastIssueLimit int
}

// Ensure FakeTracker implements domain.Tracker interface.
var _ domain.Tracker = (*FakeTracker)(nil)

// NewFakeTracker creates an empty FakeTracker.
func NewFakeTracker() *FakeTracker {
	return &FakeTracker{}
}

// CheckAuth returns AuthErr.
func (f *FakeTracker) CheckAuth(_ context.Context) error {
	f.Calls = append(f.Calls, "check-auth")
	return f.AuthErr
}

// ListLabels returns the remote label names.
func (f *FakeTracker) ListLabels(_ context.Context) ([]string, error) {
	f.Calls = append(f.Calls, "list-labels")
	if f.ListLabelsErr != nil {
		return nil, f.ListLabelsErr
	}
	return append([]string(nil), f.Labels...), nil
}

// CreateLabel records the label and adds it to the remote state.
func (f *FakeTracker) CreateLabel(_ context.Context, label domain.Label) error {
	f.Calls = append(f.Calls, "create-label:"+label.Name)
	if f.CreateLabelErr != nil {
		return f.CreateLabelErr
	}
	f.CreatedLabels = append(f.CreatedLabels, label)
	f.Labels = append(f.Labels, label.Name)
	return nil
}

// ListMilestones returns the remote milestone titles.
func (f *FakeTracker) ListMilestones(_ context.Context) ([]string, error) {
	f.Calls = append(f.Calls, "list-milestones")
	if f.ListMilestonesErr != nil {
		return nil, f.ListMilestonesErr
	}
	return append([]string(nil), f.Milestones...), nil
}

// CreateMilestone records the milestone and adds it to the remote state.
func (f *FakeTracker) CreateMilestone(_ context.Context, milestone domain.Milestone) error {
	f.Calls = append(f.Calls, "create-milestone:"+milestone.Title)
	if f.CreateMilestoneErr != nil {
		return f.CreateMilestoneErr
	}
	f.CreatedMilestones = append(f.CreatedMilestones, milestone)
	f.Milestones = append(f.Milestones, milestone.Title)
	return nil
}

// ListIssues returns up to limit remote issue titles.
func (f *FakeTracker) ListIssues(_ context.Context, limit int) ([]string, error) {
	f.Calls = append(f.Calls, "list-issues")
	f.LastIssueLimit = limit
	if f.ListIssuesErr != nil {
		return nil, f.ListIssuesErr
	}
	titles := append([]string(nil), f.Issues...)
	if limit > 0 && len(titles) > limit {
		titles = titles[:limit]
	}
	return titles, nil
}

// CreateIssue records the issue and adds it to the remote state.
func (f *FakeTracker) CreateIssue(_ context.Context, issue domain.Issue) error {
	f.Calls = append(f.Calls, "create-issue:"+issue.Title)
	if f.CreateIssueErr != nil {
		return f.CreateIssueErr
	}
	if f.FailIssueTitle != "" && issue.Title == f.FailIssueTitle {
		return &domain.CommandError{
			Args:     []string{"gh", "issue", "create", "--title", issue.Title},
			Stderr:   "could not add label",
			ExitCode: 1,
		}
	}
	f.CreatedIssues = append(f.CreatedIssues, issue)
	f.Issues = append(f.Issues, issue.Title)
	return nil
}

// DescribeCreateIssue returns a readable command line.
func (f *FakeTracker) DescribeCreateIssue(issue domain.Issue) string {
	return fmt.Sprintf("gh issue create --title %s --milestone %s", issue.Title, issue.Milestone)
}

// CreateCalls returns only the create-* entries of Calls.
func (f *FakeTracker) CreateCalls() []string {
	var calls []string
	for _, c := range f.Calls {
		if strings.HasPrefix(c, "create-") {
			calls = append(calls, c)
		}
	}
	return calls
}

// MockResponse is a canned result for MockCommandExecutor.
type MockResponse struct {
	Err    error
	Stdout string
	Stderr string
}

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Responses are looked up by the first two arguments joined by a space
// (e.g. "label list", "auth status"); unmatched commands succeed with
// empty output.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	Responses map[string]MockResponse
	Commands  []*domain.ExecCommand
}

// Ensure MockCommandExecutor implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*MockCommandExecutor)(nil)

// NewMockCommandExecutor creates a new MockCommandExecutor.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{Responses: make(map[string]MockResponse)}
}

// Execute records the command and returns the matching canned response.
func (m *MockCommandExecutor) Execute(_ context.Context, cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	m.Commands = append(m.Commands, cmd)

	key := strings.Join(cmd.Args[:min(2, len(cmd.Args))], " ")
	resp := m.Responses[key]
	res := &domain.ExecResult{Stdout: []byte(resp.Stdout), Stderr: []byte(resp.Stderr)}
	if resp.Err != nil {
		return res, resp.Err
	}
	return res, nil
}

// LastCommand returns the most recent command, or nil.
func (m *MockCommandExecutor) LastCommand() *domain.ExecCommand {
	if len(m.Commands) == 0 {
		return nil
	}
	return m.Commands[len(m.Commands)-1]
}

// MemoryDocuments is an in-memory domain.DocumentReader.
type MemoryDocuments map[string]string

// Ensure MemoryDocuments implements domain.DocumentReader interface.
var _ domain.DocumentReader = MemoryDocuments(nil)

// ReadDocument returns the named document or domain.ErrDocumentNotFound.
func (d MemoryDocuments) ReadDocument(name string) (string, error) {
	text, ok := d[name]
	if !ok {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrDocumentNotFound, name, os.ErrNotExist)
	}
	return text, nil
}

// LogEntry is one message captured by RecordingLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// RecordingLogger is a domain.Logger that keeps every entry.
type RecordingLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure RecordingLogger implements domain.Logger interface.
var _ domain.Logger = (*RecordingLogger)(nil)

func (l *RecordingLogger) add(level, category, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (l *RecordingLogger) Debug(category, msg string) { l.add("DEBUG", category, msg) }

// Info records an info entry.
func (l *RecordingLogger) Info(category, msg string) { l.add("INFO", category, msg) }

// Warn records a warning entry.
func (l *RecordingLogger) Warn(category, msg string) { l.add("WARN", category, msg) }

// Error records an error entry.
func (l *RecordingLogger) Error(category, msg string) { l.add("ERROR", category, msg) }

// Has reports whether an entry with the level contains substr.
func (l *RecordingLogger) Has(level, substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.Entries {
		if e.Level == level && strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// NewMockConfigLoader creates a MockConfigLoader returning defaults.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured Config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// RecordingReporter is a domain.SyncReporter that keeps every event as
// "<kind>:<phase>:<key>".
type RecordingReporter struct {
	Events []string
}

// Ensure RecordingReporter implements domain.SyncReporter interface.
var _ domain.SyncReporter = (*RecordingReporter)(nil)

// Created records a created event.
func (r *RecordingReporter) Created(phase domain.Phase, key string) {
	r.Events = append(r.Events, "created:"+string(phase)+":"+key)
}

// Skipped records a skipped event.
func (r *RecordingReporter) Skipped(phase domain.Phase, key string) {
	r.Events = append(r.Events, "skipped:"+string(phase)+":"+key)
}

// Planned records a planned event.
func (r *RecordingReporter) Planned(phase domain.Phase, command string) {
	r.Events = append(r.Events, "planned:"+string(phase)+":"+command)
}
