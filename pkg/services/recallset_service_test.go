package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/ent/recallset"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/services"
)

func TestRecallSetService_CreateAndGet(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, err := ts.sets.CreateSet(ctx, models.CreateRecallSetRequest{
		Name:                   "Organic Chemistry",
		Description:            "reaction mechanisms",
		DiscussionSystemPrompt: "You are discussing organic chemistry.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, set.ID)
	assert.Equal(t, recallset.StatusActive, set.Status)

	got, err := ts.sets.GetSet(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, "Organic Chemistry", got.Name)
	assert.Equal(t, "reaction mechanisms", got.Description)
}

func TestRecallSetService_NameUniqueCaseInsensitive(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	_, err := ts.sets.CreateSet(ctx, models.CreateRecallSetRequest{Name: "Linear Algebra"})
	require.NoError(t, err)

	_, err = ts.sets.CreateSet(ctx, models.CreateRecallSetRequest{Name: "linear algebra"})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestRecallSetService_UpdateStatus(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, err := ts.sets.CreateSet(ctx, models.CreateRecallSetRequest{Name: "History"})
	require.NoError(t, err)

	archived := "archived"
	updated, err := ts.sets.UpdateSet(ctx, set.ID, models.UpdateRecallSetRequest{Status: &archived})
	require.NoError(t, err)
	assert.Equal(t, recallset.StatusArchived, updated.Status)

	bogus := "deleted"
	_, err = ts.sets.UpdateSet(ctx, set.ID, models.UpdateRecallSetRequest{Status: &bogus})
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRecallSetService_DeleteCascadesPoints(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	set, points := createSetWithPoints(t, ts, 2)

	require.NoError(t, ts.sets.DeleteSet(ctx, set.ID))

	_, err := ts.sets.GetSet(ctx, set.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = ts.points.GetPoint(ctx, points[0].ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRecallSetService_GetMissing(t *testing.T) {
	ts := newTestServices(t)

	_, err := ts.sets.GetSet(context.Background(), "rs_missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
