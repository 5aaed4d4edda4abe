package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/luciuz/gh-seed/internal/domain"
	"github.com/luciuz/gh-seed/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMilestones_Execute_CreatesMissing(t *testing.T) {
	// Setup
	tracker := testutil.NewFakeTracker()
	tracker.Milestones = []string{"M0"} // closed remotely still counts
	uc := NewSyncMilestones(tracker, newDocs(), nil, nil)

	// Execute
	out, err := uc.Execute(context.Background(), SyncMilestonesInput{Document: domain.DefaultMilestonesDoc})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"M1"}, out.Created)
	assert.Equal(t, []string{"M0"}, out.Skipped)
	require.Len(t, tracker.CreatedMilestones, 1)
	assert.Equal(t, domain.Milestone{Title: "M1", Description: "Proxy MVP\nRouting."}, tracker.CreatedMilestones[0])
}

func TestSyncMilestones_Execute_NoHeadings(t *testing.T) {
	tracker := testutil.NewFakeTracker()
	docs := testutil.MemoryDocuments{"m.md": "# Nothing planned\n"}
	uc := NewSyncMilestones(tracker, docs, nil, nil)

	out, err := uc.Execute(context.Background(), SyncMilestonesInput{Document: "m.md"})

	require.NoError(t, err)
	assert.Empty(t, out.Created)
	assert.Empty(t, tracker.CreateCalls())
}

func TestSyncMilestones_Execute_ListError(t *testing.T) {
	tracker := testutil.NewFakeTracker()
	tracker.ListMilestonesErr = errors.New("HTTP 401")
	uc := NewSyncMilestones(tracker, newDocs(), nil, nil)

	_, err := uc.Execute(context.Background(), SyncMilestonesInput{Document: domain.DefaultMilestonesDoc})

	assert.ErrorContains(t, err, "list milestones")
	assert.Empty(t, tracker.CreateCalls())
}
