package rabbithole

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/pkg/llm"
	"github.com/recollect-ai/recollect/pkg/llm/llmtest"
)

func newBinding(client llm.Client) llm.Binding {
	return llm.NewBinding(client, llm.GenerationConfig{Model: "cheap", Temperature: 0.2}, 0)
}

func TestDetectEnterFiresAboveThreshold(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{
		Text: `{"enter": true, "topic": "history of the determinant", "confidence": 0.85}`,
	})

	d := NewDetector(newBinding(fake), 0.7, 0.6)
	got, err := d.DetectEnter(context.Background(), "sess_1", "wait, who invented determinants?", nil)
	require.NoError(t, err)
	assert.True(t, got.Enter)
	assert.Equal(t, "history of the determinant", got.Topic)
}

func TestDetectEnterBelowThresholdIsNoTangent(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{
		Text: `{"enter": true, "topic": "something", "confidence": 0.5}`,
	})

	d := NewDetector(newBinding(fake), 0.7, 0.6)
	got, err := d.DetectEnter(context.Background(), "sess_1", "hmm", nil)
	require.NoError(t, err)
	assert.False(t, got.Enter)
}

func TestDetectEnterParseFailureIsNoTangent(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: "no json"})

	d := NewDetector(newBinding(fake), 0, 0)
	got, err := d.DetectEnter(context.Background(), "sess_1", "anything", nil)
	require.NoError(t, err)
	assert.False(t, got.Enter)
}

func TestDetectEnterRetriesTransientError(t *testing.T) {
	fake := llmtest.NewFakeClient(
		llmtest.Reply{Err: llm.NewError(llm.KindServerError, "overloaded", nil)},
		llmtest.Reply{Text: `{"enter": true, "topic": "matrix history", "confidence": 0.9}`},
	)

	d := NewDetector(newBinding(fake), 0.7, 0.6)
	got, err := d.DetectEnter(context.Background(), "sess_1", "who came up with matrices?", nil)
	require.NoError(t, err)
	assert.True(t, got.Enter)
	assert.Len(t, fake.Requests(), 2)
}

func TestDetectReturn(t *testing.T) {
	fake := llmtest.NewFakeClient(
		llmtest.Reply{Text: `{"return_to_main": true, "confidence": 0.9}`},
		llmtest.Reply{Text: `{"return_to_main": true, "confidence": 0.4}`},
	)

	d := NewDetector(newBinding(fake), 0.7, 0.6)

	got, err := d.DetectReturn(context.Background(), "sess_1", "ok back to the review", nil)
	require.NoError(t, err)
	assert.True(t, got.ReturnToMain)

	got, err = d.DetectReturn(context.Background(), "sess_1", "interesting...", nil)
	require.NoError(t, err)
	assert.False(t, got.ReturnToMain, "below-threshold return is ignored")
}

func TestAgentOpenAndRespond(t *testing.T) {
	fake := llmtest.NewFakeClient(
		llmtest.Reply{Text: "Determinants go back to Seki and Leibniz."},
		llmtest.Reply{Text: "Cramer popularized them in 1750."},
	)

	agent := NewAgent(newBinding(fake), "sess_1", "history of the determinant", "Linear Algebra", "matrix facts", 1)
	assert.Equal(t, 1, agent.Depth())

	opening, err := agent.Open(context.Background())
	require.NoError(t, err)
	assert.Contains(t, opening, "Seki")

	// The synthetic opener pair satisfies the user-first requirement.
	history := agent.History()
	require.Len(t, history, 2)
	assert.Equal(t, llm.RoleUser, history[0].Role)
	assert.Equal(t, llm.RoleAssistant, history[1].Role)

	reply, err := agent.Respond(context.Background(), "and then?")
	require.NoError(t, err)
	assert.Contains(t, reply, "Cramer")
	assert.Len(t, agent.History(), 4)

	// The second call must carry the whole conversation.
	req := fake.LastRequest()
	require.NotNil(t, req)
	assert.Len(t, req.Messages, 3)

	// The agent has its own exploratory persona, not the tutor's.
	assert.Contains(t, req.Config.SystemPrompt, "history of the determinant")
	assert.False(t, strings.Contains(req.Config.SystemPrompt, "Socratic"))
}

func TestAgentHistoryIsDefensiveCopy(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: "hi"})
	agent := NewAgent(newBinding(fake), "sess_1", "topic", "Set", "", 1)

	_, err := agent.Open(context.Background())
	require.NoError(t, err)

	h := agent.History()
	h[0].Content = "mutated"
	assert.NotEqual(t, "mutated", agent.History()[0].Content)
}

func TestHistoryMapsShape(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: "hello"})
	agent := NewAgent(newBinding(fake), "sess_1", "topic", "Set", "", 2)

	_, err := agent.Open(context.Background())
	require.NoError(t, err)

	maps := agent.HistoryMaps()
	require.Len(t, maps, 2)
	assert.Equal(t, "user", maps[0]["role"])
	assert.Equal(t, "assistant", maps[1]["role"])
	assert.NotEmpty(t, maps[0]["timestamp"])
}
