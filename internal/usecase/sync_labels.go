package usecase

import (
	"context"
	"fmt"

	"github.com/luciuz/gh-seed/internal/domain"
)

// SyncLabelsInput contains the parameters for the labels phase.
type SyncLabelsInput struct {
	Document    string // Labels reference document name
	Description string // Description attached to created labels
}

// SyncLabels is the use case for creating missing labels.
type SyncLabels struct {
	tracker  domain.Tracker
	docs     domain.DocumentReader
	reporter domain.SyncReporter
	logger   domain.Logger
}

// NewSyncLabels creates a new SyncLabels use case.
func NewSyncLabels(
	tracker domain.Tracker,
	docs domain.DocumentReader,
	reporter domain.SyncReporter,
	logger domain.Logger,
) *SyncLabels {
	return &SyncLabels{
		tracker:  tracker,
		docs:     docs,
		reporter: reporterOrNop(reporter),
		logger:   loggerOrNop(logger),
	}
}

// Execute creates every label from the document that is absent remotely.
func (uc *SyncLabels) Execute(ctx context.Context, in SyncLabelsInput) (*SyncOutput, error) {
	text, err := uc.docs.ReadDocument(in.Document)
	if err != nil {
		return nil, fmt.Errorf("read labels document: %w", err)
	}
	names := domain.ParseLabels(text)
	uc.logger.Info(string(domain.PhaseLabels), fmt.Sprintf("parsed %d labels from %s", len(names), in.Document))

	remote, err := uc.tracker.ListLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	existing := keySet(remote)

	out := &SyncOutput{Phase: domain.PhaseLabels}
	for _, name := range names {
		if _, ok := existing[name]; ok {
			out.Skipped = append(out.Skipped, name)
			uc.reporter.Skipped(domain.PhaseLabels, name)
			continue
		}

		label := domain.NewLabel(name, in.Description)
		if err := uc.tracker.CreateLabel(ctx, label); err != nil {
			return out, fmt.Errorf("create label %q: %w", name, err)
		}
		out.Created = append(out.Created, name)
		uc.reporter.Created(domain.PhaseLabels, name)
	}

	return out, nil
}
