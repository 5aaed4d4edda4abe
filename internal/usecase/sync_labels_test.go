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

func TestSyncLabels_Execute_CreatesMissing(t *testing.T) {
	// Setup
	tracker := testutil.NewFakeTracker()
	tracker.Labels = []string{"area/proxy"}
	reporter := &testutil.RecordingReporter{}
	uc := NewSyncLabels(tracker, newDocs(), reporter, nil)

	// Execute
	out, err := uc.Execute(context.Background(), SyncLabelsInput{
		Document:    domain.DefaultLabelsDoc,
		Description: "Auto-generated label",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"prio/p0", "type/bug", "type/feature"}, out.Created)
	assert.Equal(t, []string{"area/proxy"}, out.Skipped)
	require.Len(t, tracker.CreatedLabels, 3)
	assert.Equal(t, domain.Label{Name: "prio/p0", Color: "B07219", Description: "Auto-generated label"}, tracker.CreatedLabels[0])
	assert.Contains(t, reporter.Events, "skipped:labels:area/proxy")
	assert.Contains(t, reporter.Events, "created:labels:type/bug")
}

func TestSyncLabels_Execute_CaseSensitiveMatch(t *testing.T) {
	tracker := testutil.NewFakeTracker()
	tracker.Labels = []string{"Area/Proxy"}
	docs := testutil.MemoryDocuments{"l.md": "`area/proxy`"}
	uc := NewSyncLabels(tracker, docs, nil, nil)

	out, err := uc.Execute(context.Background(), SyncLabelsInput{Document: "l.md"})

	require.NoError(t, err)
	assert.Equal(t, []string{"area/proxy"}, out.Created)
}

func TestSyncLabels_Execute_ListError(t *testing.T) {
	tracker := testutil.NewFakeTracker()
	tracker.ListLabelsErr = errors.New("network down")
	uc := NewSyncLabels(tracker, newDocs(), nil, nil)

	_, err := uc.Execute(context.Background(), SyncLabelsInput{Document: domain.DefaultLabelsDoc})

	assert.ErrorContains(t, err, "network down")
	assert.Empty(t, tracker.CreateCalls())
}

func TestSyncLabels_Execute_MissingDocument(t *testing.T) {
	tracker := testutil.NewFakeTracker()
	uc := NewSyncLabels(tracker, testutil.MemoryDocuments{}, nil, nil)

	_, err := uc.Execute(context.Background(), SyncLabelsInput{Document: "labels.md"})

	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	assert.Empty(t, tracker.Calls)
}

func TestSyncLabels_Execute_StopsAtFirstCreateError(t *testing.T) {
	tracker := testutil.NewFakeTracker()
	tracker.CreateLabelErr = &domain.CommandError{ExitCode: 1}
	uc := NewSyncLabels(tracker, newDocs(), nil, nil)

	_, err := uc.Execute(context.Background(), SyncLabelsInput{Document: domain.DefaultLabelsDoc})

	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, []string{"create-label:area/proxy"}, tracker.CreateCalls())
}
