package domain

import "fmt"

// Mode selects which phases a run executes.
type Mode string

// Valid modes.
const (
	ModeLabels     Mode = "labels"
	ModeMilestones Mode = "milestones"
	ModeIssues     Mode = "issues"
	ModeAll        Mode = "all"
)

// Phase is one sync pass.
type Phase string

// Phases in their fixed execution order.
const (
	PhaseLabels     Phase = "labels"
	PhaseMilestones Phase = "milestones"
	PhaseIssues     Phase = "issues"
)

// AllModes returns the valid modes, used for flag completion and help text.
func AllModes() []Mode {
	return []Mode{ModeLabels, ModeMilestones, ModeIssues, ModeAll}
}

// ParseMode parses a mode argument. An empty string selects ModeAll.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeAll, nil
	}
	for _, m := range AllModes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Phases returns the phases selected by the mode. The order is always
// labels, milestones, issues because issues reference the other two.
func (m Mode) Phases() []Phase {
	switch m {
	case ModeLabels:
		return []Phase{PhaseLabels}
	case ModeMilestones:
		return []Phase{PhaseMilestones}
	case ModeIssues:
		return []Phase{PhaseIssues}
	case ModeAll:
		return []Phase{PhaseLabels, PhaseMilestones, PhaseIssues}
	default:
		return nil
	}
}
