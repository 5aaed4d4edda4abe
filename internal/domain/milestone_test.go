package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMilestones_TwoHeadings(t *testing.T) {
	text := `# Milestones

## M0 — Foundations
Workspace and CI.

- crates compile

## M1 — Proxy MVP
Routing and TLS.
`

	got := ParseMilestones(text)

	require.Len(t, got, 2)
	assert.Equal(t, "M0", got[0].Title)
	assert.Equal(t, "Foundations\nWorkspace and CI.\n\n- crates compile", got[0].Description)
	assert.Equal(t, "M1", got[1].Title)
	assert.Equal(t, "Proxy MVP\nRouting and TLS.", got[1].Description)
}

func TestParseMilestones_FlushesFinalMilestone(t *testing.T) {
	got := ParseMilestones("## Last — Only one")

	require.Len(t, got, 1)
	assert.Equal(t, Milestone{Title: "Last", Description: "Only one"}, got[0])
}

func TestParseMilestones_NoHeadings(t *testing.T) {
	assert.Empty(t, ParseMilestones(""))
	assert.Empty(t, ParseMilestones("# Title\n\nSome text\n## Not a milestone\n"))
}

func TestParseMilestones_IgnoresTextBeforeFirstHeading(t *testing.T) {
	text := "intro\n\n## M2 — Hardening\nbody\r\n"

	got := ParseMilestones(text)

	require.Len(t, got, 1)
	assert.Equal(t, "Hardening\nbody", got[0].Description)
}

func TestParseMilestones_TitleWithSpaces(t *testing.T) {
	got := ParseMilestones("##   Beta Release   —   Public beta  \n")

	require.Len(t, got, 1)
	assert.Equal(t, "Beta Release", got[0].Title)
	assert.Equal(t, "Public beta", got[0].Description)
}

func TestParseMilestones_Idempotent(t *testing.T) {
	text := "## A — a\nx\n## B — b\ny\n"

	assert.Equal(t, ParseMilestones(text), ParseMilestones(text))
}
