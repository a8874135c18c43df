package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/ent/sessionmessage"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/services"
)

func startTestSession(t *testing.T, ts *testServices) *ent.StudySession {
	t.Helper()
	set, _ := createSetWithPoints(t, ts, 1)
	session, _, err := ts.sessions.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: set.ID})
	require.NoError(t, err)
	return session
}

func TestMessageService_AppendAndList(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	session := startTestSession(t, ts)

	first, err := ts.messages.AppendMessage(ctx, session.ID, 0, "assistant", "Let's review ATP synthesis.", "")
	require.NoError(t, err)
	assert.Equal(t, 0, first.MessageIndex)
	assert.Equal(t, sessionmessage.RoleAssistant, first.Role)
	require.NotNil(t, first.TokenCount)
	assert.Greater(t, *first.TokenCount, 0)

	_, err = ts.messages.AppendMessage(ctx, session.ID, 1, "user", "The proton gradient drives it.", "")
	require.NoError(t, err)

	msgs, err := ts.messages.ListMessages(ctx, session.ID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, 0, msgs[0].MessageIndex)
	assert.Equal(t, 1, msgs[1].MessageIndex)

	tail, err := ts.messages.ListMessages(ctx, session.ID, 1)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, 1, tail[0].MessageIndex)

	next, err := ts.messages.NextIndex(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, next)
}

func TestMessageService_IndexCollision(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	session := startTestSession(t, ts)

	_, err := ts.messages.AppendMessage(ctx, session.ID, 0, "assistant", "Opening message for the session.", "")
	require.NoError(t, err)

	_, err = ts.messages.AppendMessage(ctx, session.ID, 0, "user", "Racing write at the same index.", "")
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestMessageService_DisplayContent(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	session := startTestSession(t, ts)

	// Cleaned transcription: LLM sees the normalized text, the client gets
	// the display rendering.
	msg, err := ts.messages.AppendMessage(ctx, session.ID, 0, "user",
		"The equilibrium constant K equals the product over reactant concentrations.",
		"The equilibrium constant $K$ equals the product over reactant concentrations.")
	require.NoError(t, err)
	assert.NotEqual(t, msg.Content, msg.DisplayContent)

	plain, err := ts.messages.AppendMessage(ctx, session.ID, 1, "user", "no notation here at all", "no notation here at all")
	require.NoError(t, err)
	assert.Empty(t, plain.DisplayContent)
}

func TestMessageService_RejectsBadRole(t *testing.T) {
	ts := newTestServices(t)
	session := startTestSession(t, ts)

	_, err := ts.messages.AppendMessage(context.Background(), session.ID, 0, "tool", "tools have no transcript role", "")
	assert.True(t, services.IsValidationError(err))
}
