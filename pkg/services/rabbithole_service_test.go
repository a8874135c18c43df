package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/pkg/services"
)

func TestRabbitholeService_OpenAndClose(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	session := startTestSession(t, ts)

	rh, err := ts.rabbitholes.OpenRabbithole(ctx, session.ID, "chemiosmosis in archaea", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, rh.Depth)
	assert.Equal(t, 3, rh.TriggerMessageIndex)
	assert.Nil(t, rh.ReturnMessageIndex)

	history := []map[string]interface{}{
		{"role": "user", "content": "how do archaea do this?"},
		{"role": "assistant", "content": "Different membrane lipids, same principle."},
	}
	closed, err := ts.rabbitholes.CloseRabbithole(ctx, rh.ID, 5, history)
	require.NoError(t, err)
	require.NotNil(t, closed.ReturnMessageIndex)
	assert.Equal(t, 5, *closed.ReturnMessageIndex)
	assert.Len(t, closed.ConversationHistory, 2)
}

func TestRabbitholeService_CloseBeforeTrigger(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	session := startTestSession(t, ts)

	rh, err := ts.rabbitholes.OpenRabbithole(ctx, session.ID, "a tangent", 1, 4)
	require.NoError(t, err)

	_, err = ts.rabbitholes.CloseRabbithole(ctx, rh.ID, 4, nil)
	assert.True(t, services.IsValidationError(err))
}

func TestRabbitholeService_ListOrdersByTrigger(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	session := startTestSession(t, ts)

	_, err := ts.rabbitholes.OpenRabbithole(ctx, session.ID, "later tangent", 1, 9)
	require.NoError(t, err)
	_, err = ts.rabbitholes.OpenRabbithole(ctx, session.ID, "earlier tangent", 1, 2)
	require.NoError(t, err)

	rhs, err := ts.rabbitholes.ListRabbitholes(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, rhs, 2)
	assert.Equal(t, "earlier tangent", rhs[0].Topic)
	assert.Equal(t, "later tangent", rhs[1].Topic)
}
