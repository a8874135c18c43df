package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/ent/studysession"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/services"
)

func TestSessionService_StartPicksDuePoints(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, points := createSetWithPoints(t, ts, 3)

	session, targets, err := ts.sessions.StartSession(ctx, models.StartSessionRequest{RecallSetID: set.ID})
	require.NoError(t, err)
	assert.Equal(t, studysession.StatusInProgress, session.Status)
	assert.Len(t, targets, 3)
	assert.Len(t, session.TargetPointIds, 3)

	ids := make(map[string]bool)
	for _, p := range points {
		ids[p.ID] = true
	}
	for _, id := range session.TargetPointIds {
		assert.True(t, ids[id])
	}
}

func TestSessionService_StartRespectsMaxPoints(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, _ := createSetWithPoints(t, ts, 5)

	session, targets, err := ts.sessions.StartSession(ctx, models.StartSessionRequest{
		RecallSetID: set.ID,
		MaxPoints:   2,
	})
	require.NoError(t, err)
	assert.Len(t, targets, 2)
	assert.Len(t, session.TargetPointIds, 2)
}

func TestSessionService_StartWithNothingDue(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, err := ts.sets.CreateSet(ctx, models.CreateRecallSetRequest{Name: "empty set"})
	require.NoError(t, err)

	_, _, err = ts.sessions.StartSession(ctx, models.StartSessionRequest{RecallSetID: set.ID})
	assert.ErrorIs(t, err, services.ErrNoDuePoints)
}

func TestSessionService_OneInProgressPerSet(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, _ := createSetWithPoints(t, ts, 2)

	session, _, err := ts.sessions.StartSession(ctx, models.StartSessionRequest{RecallSetID: set.ID})
	require.NoError(t, err)

	// Second start hits the partial unique index.
	_, _, err = ts.sessions.StartSession(ctx, models.StartSessionRequest{RecallSetID: set.ID})
	assert.ErrorIs(t, err, services.ErrActiveSession)

	active, err := ts.sessions.ActiveSession(ctx, set.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, session.ID, active.ID)
}

func TestSessionService_StartOnInactiveSet(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, _ := createSetWithPoints(t, ts, 1)
	paused := "paused"
	_, err := ts.sets.UpdateSet(ctx, set.ID, models.UpdateRecallSetRequest{Status: &paused})
	require.NoError(t, err)

	_, _, err = ts.sessions.StartSession(ctx, models.StartSessionRequest{RecallSetID: set.ID})
	assert.True(t, services.IsValidationError(err))
}

func TestSessionService_CompleteStoresMetrics(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, _ := createSetWithPoints(t, ts, 1)
	session, _, err := ts.sessions.StartSession(ctx, models.StartSessionRequest{RecallSetID: set.ID})
	require.NoError(t, err)

	completed, err := ts.sessions.CompleteSession(ctx, session.ID, models.SessionMetrics{
		DurationMs:      60000,
		MessageCount:    7,
		PointsAttempted: 1,
		PointsRecalled:  1,
		RecallRate:      1.0,
	})
	require.NoError(t, err)
	assert.Equal(t, studysession.StatusCompleted, completed.Status)
	require.NotNil(t, completed.EndedAt)
	assert.Equal(t, float64(7), completed.Metrics["message_count"])
	assert.Equal(t, 1.0, completed.Metrics["recall_rate"])

	// A new session can start once the old one ended.
	_, _, err = ts.sessions.StartSession(ctx, models.StartSessionRequest{RecallSetID: set.ID})
	require.NoError(t, err)
}

func TestSessionService_EndIsTerminal(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, _ := createSetWithPoints(t, ts, 1)
	session, _, err := ts.sessions.StartSession(ctx, models.StartSessionRequest{RecallSetID: set.ID})
	require.NoError(t, err)

	_, err = ts.sessions.AbandonSession(ctx, session.ID, nil)
	require.NoError(t, err)

	_, err = ts.sessions.CompleteSession(ctx, session.ID, models.SessionMetrics{})
	assert.ErrorIs(t, err, services.ErrSessionEnded)
	_, err = ts.sessions.AbandonSession(ctx, session.ID, nil)
	assert.ErrorIs(t, err, services.ErrSessionEnded)
}

func TestSessionService_TouchAndStaleQuery(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, _ := createSetWithPoints(t, ts, 1)
	session, _, err := ts.sessions.StartSession(ctx, models.StartSessionRequest{RecallSetID: set.ID})
	require.NoError(t, err)

	// Fresh session is not stale against a past cutoff.
	stale, err := ts.sessions.StaleSessions(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Empty(t, stale)

	// Against a future cutoff it is.
	stale, err = ts.sessions.StaleSessions(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, session.ID, stale[0].ID)

	require.NotNil(t, stale[0].LastActivityAt)
	before := *stale[0].LastActivityAt
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, ts.sessions.Touch(ctx, session.ID))

	got, err := ts.sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastActivityAt)
	assert.True(t, got.LastActivityAt.After(before))

	// Ended sessions never show up as stale.
	_, err = ts.sessions.AbandonSession(ctx, session.ID, nil)
	require.NoError(t, err)
	stale, err = ts.sessions.StaleSessions(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestSessionService_ListFilters(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, _ := createSetWithPoints(t, ts, 1)
	session, _, err := ts.sessions.StartSession(ctx, models.StartSessionRequest{RecallSetID: set.ID})
	require.NoError(t, err)
	_, err = ts.sessions.AbandonSession(ctx, session.ID, nil)
	require.NoError(t, err)

	resp, err := ts.sessions.ListSessions(ctx, models.SessionFilters{
		RecallSetID: set.ID,
		Status:      "abandoned",
	})
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, session.ID, resp.Sessions[0].ID)

	resp, err = ts.sessions.ListSessions(ctx, models.SessionFilters{Status: "in_progress"})
	require.NoError(t, err)
	assert.Empty(t, resp.Sessions)

	_, err = ts.sessions.ListSessions(ctx, models.SessionFilters{Status: "paused"})
	assert.True(t, services.IsValidationError(err))
}
