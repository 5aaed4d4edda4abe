package usecase

import (
	"context"
	"fmt"

	"github.com/luciuz/gh-seed/internal/domain"
)

// SyncMilestonesInput contains the parameters for the milestones phase.
type SyncMilestonesInput struct {
	Document string // Milestones document name
}

// SyncMilestones is the use case for creating missing milestones.
type SyncMilestones struct {
	tracker  domain.Tracker
	docs     domain.DocumentReader
	reporter domain.SyncReporter
	logger   domain.Logger
}

// NewSyncMilestones creates a new SyncMilestones use case.
func NewSyncMilestones(
	tracker domain.Tracker,
	docs domain.DocumentReader,
	reporter domain.SyncReporter,
	logger domain.Logger,
) *SyncMilestones {
	return &SyncMilestones{
		tracker:  tracker,
		docs:     docs,
		reporter: reporterOrNop(reporter),
		logger:   loggerOrNop(logger),
	}
}

// Execute creates every milestone from the document whose title does not
// exist remotely in any state.
func (uc *SyncMilestones) Execute(ctx context.Context, in SyncMilestonesInput) (*SyncOutput, error) {
	text, err := uc.docs.ReadDocument(in.Document)
	if err != nil {
		return nil, fmt.Errorf("read milestones document: %w", err)
	}
	milestones := domain.ParseMilestones(text)
	uc.logger.Info(string(domain.PhaseMilestones), fmt.Sprintf("parsed %d milestones from %s", len(milestones), in.Document))

	remote, err := uc.tracker.ListMilestones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	existing := keySet(remote)

	out := &SyncOutput{Phase: domain.PhaseMilestones}
	for _, m := range milestones {
		if _, ok := existing[m.Title]; ok {
			out.Skipped = append(out.Skipped, m.Title)
			uc.reporter.Skipped(domain.PhaseMilestones, m.Title)
			continue
		}

		if err := uc.tracker.CreateMilestone(ctx, m); err != nil {
			return out, fmt.Errorf("create milestone %q: %w", m.Title, err)
		}
		out.Created = append(out.Created, m.Title)
		uc.reporter.Created(domain.PhaseMilestones, m.Title)
	}

	return out, nil
}
