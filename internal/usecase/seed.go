package usecase

import (
	"context"
	"fmt"

	"github.com/luciuz/gh-seed/internal/domain"
)

// SeedInput contains the parameters for a full seeding run.
type SeedInput struct {
	Mode   domain.Mode // Phases to run
	DryRun bool        // Applies to the issues phase only
}

// SeedOutput contains the results of every phase that ran.
type SeedOutput struct {
	Phases []SyncOutput
}

// Seed runs the auth preflight and the selected sync phases in order.
// Fields are ordered to minimize memory padding.
type Seed struct {
	tracker  domain.Tracker
	docs     domain.DocumentReader
	reporter domain.SyncReporter
	logger   domain.Logger
	config   *domain.Config
}

// NewSeed creates a new Seed use case.
func NewSeed(
	tracker domain.Tracker,
	docs domain.DocumentReader,
	config *domain.Config,
	reporter domain.SyncReporter,
	logger domain.Logger,
) *Seed {
	if config == nil {
		config = domain.NewDefaultConfig()
	}
	return &Seed{
		tracker:  tracker,
		docs:     docs,
		config:   config,
		reporter: reporterOrNop(reporter),
		logger:   loggerOrNop(logger),
	}
}

// Execute checks authentication, then runs labels, milestones and issues
// (as selected by the mode) in that order. The first failure aborts the run;
// records created before it stay created.
func (uc *Seed) Execute(ctx context.Context, in SeedInput) (*SeedOutput, error) {
	phases := in.Mode.Phases()
	if len(phases) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, in.Mode)
	}

	if err := uc.tracker.CheckAuth(ctx); err != nil {
		return nil, err
	}

	out := &SeedOutput{}
	for _, phase := range phases {
		uc.logger.Info("seed", fmt.Sprintf("running %s phase", phase))

		res, err := uc.runPhase(ctx, phase, in.DryRun)
		if res != nil {
			out.Phases = append(out.Phases, *res)
		}
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

func (uc *Seed) runPhase(ctx context.Context, phase domain.Phase, dryRun bool) (*SyncOutput, error) {
	switch phase {
	case domain.PhaseLabels:
		return NewSyncLabels(uc.tracker, uc.docs, uc.reporter, uc.logger).Execute(ctx, SyncLabelsInput{
			Document:    uc.config.Docs.Labels,
			Description: uc.config.Labels.Description,
		})
	case domain.PhaseMilestones:
		return NewSyncMilestones(uc.tracker, uc.docs, uc.reporter, uc.logger).Execute(ctx, SyncMilestonesInput{
			Document: uc.config.Docs.Milestones,
		})
	case domain.PhaseIssues:
		return NewSyncIssues(uc.tracker, uc.docs, uc.reporter, uc.logger).Execute(ctx, SyncIssuesInput{
			Document: uc.config.Docs.Backlog,
			Limit:    uc.config.GitHub.IssueLimit,
			DryRun:   dryRun,
		})
	default:
		return nil, fmt.Errorf("unknown phase %q", phase)
	}
}
