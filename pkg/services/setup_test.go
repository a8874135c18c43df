package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/pkg/database"
	"github.com/recollect-ai/recollect/pkg/fsrs"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/services"
	testdb "github.com/recollect-ai/recollect/test/database"
)

// testServices bundles every service against one throwaway schema.
type testServices struct {
	db          *database.Client
	sets        *services.RecallSetService
	points      *services.RecallPointService
	sessions    *services.SessionService
	messages    *services.MessageService
	outcomes    *services.OutcomeService
	rabbitholes *services.RabbitholeService
	events      *services.EventService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	client := testdb.NewTestClient(t)
	scheduler := fsrs.NewScheduler(fsrs.DefaultParams())

	points := services.NewRecallPointService(client.Client, scheduler, nil)
	return &testServices{
		db:          client,
		sets:        services.NewRecallSetService(client.Client, nil),
		points:      points,
		sessions:    services.NewSessionService(client.Client, points, 10, nil),
		messages:    services.NewMessageService(client.Client, nil),
		outcomes:    services.NewOutcomeService(client.Client, nil),
		rabbitholes: services.NewRabbitholeService(client.Client, nil),
		events:      services.NewEventService(client.Client),
	}
}

// createSetWithPoints creates an active set with n freshly due points.
func createSetWithPoints(t *testing.T, ts *testServices, n int) (*ent.RecallSet, []*ent.RecallPoint) {
	t.Helper()
	ctx := context.Background()

	set, err := ts.sets.CreateSet(ctx, models.CreateRecallSetRequest{
		Name:        "biochem " + t.Name(),
		Description: "electron transport chain",
	})
	require.NoError(t, err)

	points := make([]*ent.RecallPoint, 0, n)
	for i := 0; i < n; i++ {
		p, err := ts.points.AddPoint(ctx, set.ID, models.CreateRecallPointRequest{
			Content: "ATP synthase is driven by the proton gradient across the inner membrane",
			Context: "chapter 14",
		})
		require.NoError(t, err)
		points = append(points, p)
	}
	return set, points
}
