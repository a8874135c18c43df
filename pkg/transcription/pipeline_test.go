package transcription

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/pkg/llm"
	"github.com/recollect-ai/recollect/pkg/llm/llmtest"
)

func newPipeline(client llm.Client, terms []string, notation bool) *Pipeline {
	binding := llm.NewBinding(client, llm.GenerationConfig{Model: "cheap", Temperature: 0.2}, 0)
	return NewPipeline(binding, terms, notation)
}

func TestProcessEmptyInputShortCircuits(t *testing.T) {
	fake := llmtest.NewFakeClient()
	got := newPipeline(fake, nil, true).Process(context.Background(), "sess_1", "   ", SourceVoice)
	assert.Equal(t, Result{}, got)
	assert.Empty(t, fake.Requests())
}

func TestProcessTypedWithNotationDisabledPassesThrough(t *testing.T) {
	fake := llmtest.NewFakeClient()
	got := newPipeline(fake, nil, false).Process(context.Background(), "sess_1", "eigenvalues of $A$", SourceTyped)

	assert.Equal(t, "eigenvalues of $A$", got.DisplayText)
	assert.Equal(t, "eigenvalues of $A$", got.LLMText)
	assert.True(t, got.HasNotation)
	assert.Empty(t, fake.Requests(), "no LLM call for typed input with notation off")
}

func TestProcessVoiceCorrectsTerminology(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{
		Text: `{"display_text": "the eigenvalue $\\lambda$ is real", "llm_text": "the eigenvalue lambda is real", "corrections": [{"original": "again value", "corrected": "eigenvalue"}]}`,
	})

	got := newPipeline(fake, []string{"eigenvalue"}, true).
		Process(context.Background(), "sess_1", "the again value lambda is real", SourceVoice)

	assert.Equal(t, "the eigenvalue $\\lambda$ is real", got.DisplayText)
	assert.Equal(t, "the eigenvalue lambda is real", got.LLMText)
	require.Len(t, got.Corrections, 1)
	assert.Equal(t, "eigenvalue", got.Corrections[0].Corrected)
	assert.True(t, got.HasNotation)

	req := fake.LastRequest()
	require.NotNil(t, req)
	assert.Contains(t, req.Messages[0].Content, "eigenvalue", "terminology is in the prompt")
}

func TestProcessParseFailurePassesThrough(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: "not json at all"})

	got := newPipeline(fake, nil, true).Process(context.Background(), "sess_1", "plain input", SourceVoice)
	assert.Equal(t, "plain input", got.DisplayText)
	assert.Equal(t, "plain input", got.LLMText)
	assert.False(t, got.HasNotation)
}

func TestProcessLLMErrorPassesThrough(t *testing.T) {
	// Both the call and its retry fail; the raw input passes through.
	fake := llmtest.NewFakeClient(
		llmtest.Reply{Err: llm.NewError(llm.KindTimeout, "deadline", nil)},
		llmtest.Reply{Err: llm.NewError(llm.KindTimeout, "deadline", nil)},
	)

	got := newPipeline(fake, nil, true).Process(context.Background(), "sess_1", "some `code` here", SourceVoice)
	assert.Equal(t, "some `code` here", got.LLMText)
	assert.True(t, got.HasNotation)
	assert.Len(t, fake.Requests(), 2)
}

func TestProcessRetriesTransientError(t *testing.T) {
	fake := llmtest.NewFakeClient(
		llmtest.Reply{Err: llm.NewError(llm.KindRateLimit, "slow down", nil)},
		llmtest.Reply{Text: `{"display_text": "the $K$ constant", "llm_text": "the K constant", "corrections": []}`},
	)

	got := newPipeline(fake, nil, true).Process(context.Background(), "sess_1", "the K constant", SourceVoice)
	assert.Equal(t, "the $K$ constant", got.DisplayText)
	assert.Equal(t, "the K constant", got.LLMText)
	assert.Len(t, fake.Requests(), 2)
}

func TestExtractTerminology(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{
		Text: `["eigenvalue", "determinant", "rank"]`,
	})
	binding := llm.NewBinding(fake, llm.GenerationConfig{Model: "cheap"}, 0)

	terms := ExtractTerminology(context.Background(), binding, "sess_1", []string{"facts about matrices"})
	assert.Equal(t, []string{"eigenvalue", "determinant", "rank"}, terms)

	// Failures yield an empty list, never an error.
	fake2 := llmtest.NewFakeClient(llmtest.Reply{Err: llm.NewError(llm.KindServerError, "boom", nil)})
	binding2 := llm.NewBinding(fake2, llm.GenerationConfig{Model: "cheap"}, 0)
	assert.Nil(t, ExtractTerminology(context.Background(), binding2, "sess_1", []string{"x"}))
}
