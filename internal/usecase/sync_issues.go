package usecase

import (
	"context"
	"fmt"

	"github.com/luciuz/gh-seed/internal/domain"
)

// SyncIssuesInput contains the parameters for the issues phase.
type SyncIssuesInput struct {
	Document string // Issue backlog document name
	Limit    int    // Max remote issues fetched for the existence check
	DryRun   bool   // If true, print the create commands instead of running them
}

// SyncIssues is the use case for creating missing backlog issues.
type SyncIssues struct {
	tracker  domain.Tracker
	docs     domain.DocumentReader
	reporter domain.SyncReporter
	logger   domain.Logger
}

// NewSyncIssues creates a new SyncIssues use case.
func NewSyncIssues(
	tracker domain.Tracker,
	docs domain.DocumentReader,
	reporter domain.SyncReporter,
	logger domain.Logger,
) *SyncIssues {
	return &SyncIssues{
		tracker:  tracker,
		docs:     docs,
		reporter: reporterOrNop(reporter),
		logger:   loggerOrNop(logger),
	}
}

// Execute creates every backlog issue whose title does not exist remotely.
// Issue references to labels and milestones are not checked here; a missing
// reference fails the remote create.
func (uc *SyncIssues) Execute(ctx context.Context, in SyncIssuesInput) (*SyncOutput, error) {
	text, err := uc.docs.ReadDocument(in.Document)
	if err != nil {
		return nil, fmt.Errorf("read backlog document: %w", err)
	}
	issues := domain.ParseIssues(text)
	uc.logger.Info(string(domain.PhaseIssues), fmt.Sprintf("parsed %d issues from %s", len(issues), in.Document))
	uc.warnDuplicateTitles(issues)

	remote, err := uc.tracker.ListIssues(ctx, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	if in.Limit > 0 && len(remote) >= in.Limit {
		uc.logger.Warn(string(domain.PhaseIssues),
			fmt.Sprintf("remote issue list hit the limit of %d; older issues may be recreated", in.Limit))
	}
	existing := keySet(remote)

	out := &SyncOutput{Phase: domain.PhaseIssues}
	for _, issue := range issues {
		if _, ok := existing[issue.Title]; ok {
			out.Skipped = append(out.Skipped, issue.Title)
			uc.reporter.Skipped(domain.PhaseIssues, issue.Title)
			continue
		}

		if in.DryRun {
			command := uc.tracker.DescribeCreateIssue(issue)
			out.Planned = append(out.Planned, command)
			uc.reporter.Planned(domain.PhaseIssues, command)
			continue
		}

		if err := uc.tracker.CreateIssue(ctx, issue); err != nil {
			return out, fmt.Errorf("create issue %q: %w", issue.Title, err)
		}
		out.Created = append(out.Created, issue.Title)
		uc.reporter.Created(domain.PhaseIssues, issue.Title)
	}

	return out, nil
}

// warnDuplicateTitles logs titles that appear more than once in the backlog.
// Duplicates are still dispatched as written.
func (uc *SyncIssues) warnDuplicateTitles(issues []domain.Issue) {
	seen := make(map[string]int, len(issues))
	for _, issue := range issues {
		seen[issue.Title]++
		if seen[issue.Title] == 2 {
			uc.logger.Warn(string(domain.PhaseIssues), fmt.Sprintf("duplicate issue title in backlog: %q", issue.Title))
		}
	}
}
