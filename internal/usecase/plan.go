package usecase

import (
	"context"
	"fmt"

	"github.com/luciuz/gh-seed/internal/domain"
)

// PlanInput contains the parameters for building a plan.
type PlanInput struct {
	Mode domain.Mode
}

// PlanOutput lists the records parsed from the documents.
// Phases not selected by the mode are left empty.
type PlanOutput struct {
	Labels     []domain.Label     `yaml:"labels,omitempty"`
	Milestones []domain.Milestone `yaml:"milestones,omitempty"`
	Issues     []domain.Issue     `yaml:"issues,omitempty"`
}

// Plan parses the documents without contacting the tracker.
type Plan struct {
	docs   domain.DocumentReader
	config *domain.Config
}

// NewPlan creates a new Plan use case.
func NewPlan(docs domain.DocumentReader, config *domain.Config) *Plan {
	if config == nil {
		config = domain.NewDefaultConfig()
	}
	return &Plan{docs: docs, config: config}
}

// Execute parses the documents for the selected phases.
func (uc *Plan) Execute(_ context.Context, in PlanInput) (*PlanOutput, error) {
	phases := in.Mode.Phases()
	if len(phases) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, in.Mode)
	}

	out := &PlanOutput{}
	for _, phase := range phases {
		switch phase {
		case domain.PhaseLabels:
			text, err := uc.docs.ReadDocument(uc.config.Docs.Labels)
			if err != nil {
				return nil, fmt.Errorf("read labels document: %w", err)
			}
			for _, name := range domain.ParseLabels(text) {
				out.Labels = append(out.Labels, domain.NewLabel(name, uc.config.Labels.Description))
			}
		case domain.PhaseMilestones:
			text, err := uc.docs.ReadDocument(uc.config.Docs.Milestones)
			if err != nil {
				return nil, fmt.Errorf("read milestones document: %w", err)
			}
			out.Milestones = domain.ParseMilestones(text)
		case domain.PhaseIssues:
			text, err := uc.docs.ReadDocument(uc.config.Docs.Backlog)
			if err != nil {
				return nil, fmt.Errorf("read backlog document: %w", err)
			}
			out.Issues = domain.ParseIssues(text)
		}
	}
	return out, nil
}
