package evaluator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/pkg/fsrs"
	"github.com/recollect-ai/recollect/pkg/llm"
	"github.com/recollect-ai/recollect/pkg/llm/llmtest"
)

func newEvaluator(client llm.Client) *Evaluator {
	binding := llm.NewBinding(client, llm.GenerationConfig{Model: "cheap", Temperature: 0.2, MaxTokens: 1024}, 0)
	return New(binding, 0.5)
}

func testInput() Input {
	return Input{
		SessionID: "sess_1",
		SetName:   "Linear Algebra",
		RecentMessages: []Message{
			{Index: 2, Role: "assistant", Content: "What does the determinant tell you?"},
			{Index: 3, Role: "user", Content: "If it's zero the matrix is singular."},
		},
		UncheckedPoints: []Point{
			{ID: "rp_det", Content: "A matrix is invertible iff its determinant is nonzero"},
			{ID: "rp_rank", Content: "Rank equals the dimension of the column space"},
		},
	}
}

func TestEvaluateAcceptsDemonstration(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{
		Text: `{"demonstrated": [{"point_id": "rp_det", "confidence": 0.9, "reasoning": "stated the singularity condition"}], "overall_feedback": "solid"}`,
	})

	eval, err := newEvaluator(fake).Evaluate(context.Background(), testInput())
	require.NoError(t, err)
	require.Len(t, eval.Demonstrated, 1)

	d := eval.Demonstrated[0]
	assert.Equal(t, "rp_det", d.PointID)
	assert.Equal(t, fsrs.Easy, d.Rating)
	assert.Equal(t, 2, d.MessageIndexStart)
	assert.Equal(t, 3, d.MessageIndexEnd)
	assert.Equal(t, "solid", eval.OverallFeedback)
}

func TestEvaluateFiltersVerdicts(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{
		Text: `{"demonstrated": [
			{"point_id": "rp_det", "confidence": 0.3, "reasoning": "below threshold"},
			{"point_id": "rp_ghost", "confidence": 0.95, "reasoning": "hallucinated id"},
			{"point_id": "rp_rank", "confidence": 0.7, "reasoning": "just recalled"}
		]}`,
	})

	input := testInput()
	input.JustRecalledIDs = []string{"rp_rank"}

	eval, err := newEvaluator(fake).Evaluate(context.Background(), input)
	require.NoError(t, err)
	assert.Empty(t, eval.Demonstrated)
}

func TestEvaluateToleratesCodeFences(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{
		Text: "```json\n{\"demonstrated\": [{\"point_id\": \"rp_det\", \"confidence\": 0.6, \"reasoning\": \"ok\"}]}\n```",
	})

	eval, err := newEvaluator(fake).Evaluate(context.Background(), testInput())
	require.NoError(t, err)
	require.Len(t, eval.Demonstrated, 1)
	assert.Equal(t, fsrs.Good, eval.Demonstrated[0].Rating)
}

func TestEvaluateParseFailureIsEmptyNotError(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: "I cannot answer in JSON today."})

	eval, err := newEvaluator(fake).Evaluate(context.Background(), testInput())
	require.NoError(t, err)
	assert.Empty(t, eval.Demonstrated)
}

func TestEvaluateLLMErrorSurfaces(t *testing.T) {
	// Two failures: rate limits are retried once before giving up.
	fake := llmtest.NewFakeClient(
		llmtest.Reply{Err: llm.NewError(llm.KindRateLimit, "slow down", nil)},
		llmtest.Reply{Err: llm.NewError(llm.KindRateLimit, "slow down", nil)},
	)

	_, err := newEvaluator(fake).Evaluate(context.Background(), testInput())
	assert.Error(t, err)
	assert.Len(t, fake.Requests(), 2)
}

func TestEvaluateRetriesTransientError(t *testing.T) {
	fake := llmtest.NewFakeClient(
		llmtest.Reply{Err: llm.NewError(llm.KindServerError, "overloaded", nil)},
		llmtest.Reply{Text: `{"demonstrated": [{"point_id": "rp_det", "confidence": 0.9, "reasoning": "recovered"}]}`},
	)

	eval, err := newEvaluator(fake).Evaluate(context.Background(), testInput())
	require.NoError(t, err)
	require.Len(t, eval.Demonstrated, 1)
	assert.Len(t, fake.Requests(), 2)
}

func TestEvaluateEmptyChecklistShortCircuits(t *testing.T) {
	fake := llmtest.NewFakeClient()

	input := testInput()
	input.UncheckedPoints = nil
	eval, err := newEvaluator(fake).Evaluate(context.Background(), input)
	require.NoError(t, err)
	assert.Empty(t, eval.Demonstrated)
	assert.Empty(t, fake.Requests(), "no LLM call when nothing is unchecked")
}
