package usecase

import (
	"github.com/luciuz/gh-seed/internal/domain"
	"github.com/luciuz/gh-seed/internal/testutil"
)

const labelsDoc = "# Labels\n\n" +
	"- `type/feature`, `type/bug`\n" +
	"- `area/proxy`\n" +
	"- `prio/p0`\n\n" +
	"## Milestones\n\n- `M0`\n- `M1`\n"

const milestonesDoc = "# Milestones\n\n" +
	"## M0 — Foundations\n" +
	"Workspace builds.\n\n" +
	"## M1 — Proxy MVP\n" +
	"Routing.\n"

const backlogDoc = "# Backlog\n\n" +
	"### Set up CI\n" +
	"**Labels:** `type/feature`\n" +
	"**Milestone:** M0\n\n" +
	"Run tests on push.\n" +
	"\n---\n\n" +
	"### Route by host\n" +
	"**Labels:** `type/feature`, `area/proxy`\n" +
	"**Milestone:** M1\n\n" +
	"Host-based routing.\n"

func newDocs() testutil.MemoryDocuments {
	return testutil.MemoryDocuments{
		domain.DefaultLabelsDoc:     labelsDoc,
		domain.DefaultMilestonesDoc: milestonesDoc,
		domain.DefaultBacklogDoc:    backlogDoc,
	}
}
