package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/ent/recalloutcome"
	"github.com/recollect-ai/recollect/pkg/fsrs"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/services"
)

func TestOutcomeService_RecordAndList(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, points := createSetWithPoints(t, ts, 1)
	session, _, err := ts.sessions.StartSession(ctx, models.StartSessionRequest{RecallSetID: set.ID})
	require.NoError(t, err)

	outcome, err := ts.outcomes.RecordOutcome(ctx, services.RecordOutcomeRequest{
		SessionID:         session.ID,
		RecallPointID:     points[0].ID,
		Success:           true,
		Confidence:        0.85,
		Rating:            fsrs.Good,
		Reasoning:         "explained the proton gradient unprompted",
		MessageIndexStart: 1,
		MessageIndexEnd:   1,
		TimeSpentMs:       42000,
	})
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, recalloutcome.RatingGood, outcome.Rating)

	listed, err := ts.outcomes.ListOutcomes(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, points[0].ID, listed[0].RecallPointID)
}

func TestOutcomeService_RejectsUnknownPoint(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	session := startTestSession(t, ts)

	_, err := ts.outcomes.RecordOutcome(ctx, services.RecordOutcomeRequest{
		SessionID:     session.ID,
		RecallPointID: "rp_missing",
		Success:       false,
		Confidence:    0.2,
		Rating:        fsrs.Again,
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRecallPointService_ApplyReview(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	_, points := createSetWithPoints(t, ts, 1)
	point := points[0]

	scheduler := fsrs.NewScheduler(fsrs.DefaultParams())
	state := scheduler.Update(services.MemoryState(point), fsrs.Good, point.Due)

	updated, err := ts.points.ApplyReview(ctx, point.ID, state, true, 30000)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Reps)
	assert.True(t, updated.Due.After(point.Due))
	require.NotNil(t, updated.LastReview)
	require.Len(t, updated.RecallHistory, 1)
	assert.Equal(t, true, updated.RecallHistory[0]["success"])

	// DueOnly filtering excludes the rescheduled point.
	due, err := ts.points.ListPoints(ctx, point.RecallSetID, models.RecallPointFilters{DueOnly: true})
	require.NoError(t, err)
	assert.Empty(t, due)
}
