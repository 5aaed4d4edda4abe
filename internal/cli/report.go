package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/luciuz/gh-seed/internal/domain"
)

// Report colors.
var (
	colorCreated = lipgloss.Color("#00B894")
	colorSkipped = lipgloss.Color("#636E72")
	colorPlanned = lipgloss.Color("#FDCB6E")
	colorDone    = lipgloss.Color("#6C5CE7")
)

// phaseNoun maps a phase to the record noun used in progress lines.
var phaseNoun = map[domain.Phase]string{
	domain.PhaseLabels:     "label",
	domain.PhaseMilestones: "milestone",
	domain.PhaseIssues:     "issue",
}

// reporter prints sync progress lines. Colors are dropped automatically
// when w is not a terminal.
type reporter struct {
	w       io.Writer
	created lipgloss.Style
	skipped lipgloss.Style
	planned lipgloss.Style
	done    lipgloss.Style
}

// Ensure reporter implements domain.SyncReporter interface.
var _ domain.SyncReporter = (*reporter)(nil)

func newReporter(w io.Writer) *reporter {
	r := lipgloss.NewRenderer(w)
	return &reporter{
		w:       w,
		created: r.NewStyle().Foreground(colorCreated),
		skipped: r.NewStyle().Foreground(colorSkipped),
		planned: r.NewStyle().Foreground(colorPlanned),
		done:    r.NewStyle().Foreground(colorDone),
	}
}

func (r *reporter) Created(phase domain.Phase, key string) {
	_, _ = fmt.Fprintf(r.w, "%s %s\n", r.created.Render("Created "+phaseNoun[phase]+":"), key)
}

func (r *reporter) Skipped(_ domain.Phase, key string) {
	_, _ = fmt.Fprintf(r.w, "%s %s\n", r.skipped.Render("Skip (exists):"), key)
}

func (r *reporter) Planned(_ domain.Phase, command string) {
	_, _ = fmt.Fprintf(r.w, "%s %s\n", r.planned.Render("DRY RUN:"), command)
}

func (r *reporter) Done() {
	_, _ = fmt.Fprintln(r.w, r.done.Render("✅ Done."))
}
