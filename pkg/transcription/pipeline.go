// Package transcription turns raw (possibly voice-transcribed) user input
// into display-ready text and LLM-context text, correcting domain terms and
// rendering math/code notation.
package transcription

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/recollect-ai/recollect/pkg/llm"
)

// notationPattern matches inline LaTeX ($…$) or backtick code spans.
var notationPattern = regexp.MustCompile("\\$[^$]+\\$|`[^`]+`")

const correctionSystemPrompt = `You clean up voice-transcribed input for a study conversation.
Fix misheard domain terms using the provided vocabulary and render any spoken
mathematics as inline LaTeX ($...$) and any code identifiers in backticks.
Never change the meaning, only the surface form.

Respond with ONLY a JSON object:
{"display_text": "...", "llm_text": "...", "corrections": [{"original": "...", "corrected": "..."}]}

display_text carries notation; llm_text is the same content in plain prose for
the tutor. When nothing needs fixing, return the input unchanged in both.`

const notationOnlySystemPrompt = `You render notation in typed study input.
Wrap inline mathematics in $...$ and code identifiers in backticks. Do not
correct vocabulary or otherwise reword.

Respond with ONLY a JSON object:
{"display_text": "...", "llm_text": "...", "corrections": []}`

const terminologySystemPrompt = `You extract domain vocabulary from study material.
List the technical terms, names, and notation a speech-to-text system is
likely to mishear. Respond with ONLY a JSON array of strings.`

// Source distinguishes how the user produced the text.
type Source string

const (
	SourceVoice Source = "voice"
	SourceTyped Source = "typed"
)

// Correction records one term fix for optional UI display.
type Correction struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

// Result is the processed form of one user input.
type Result struct {
	DisplayText string
	LLMText     string
	Corrections []Correction
	HasNotation bool
}

// Pipeline is configured once per session with the set's terminology.
type Pipeline struct {
	binding         llm.Binding
	terminology     []string
	notationEnabled bool
}

// NewPipeline builds a pipeline. The binding must carry the cheap utility
// model, never the tutor's.
func NewPipeline(binding llm.Binding, terminology []string, notationEnabled bool) *Pipeline {
	return &Pipeline{
		binding:         binding,
		terminology:     terminology,
		notationEnabled: notationEnabled,
	}
}

// ExtractTerminology asks the model to enumerate the technical vocabulary of
// a recall set. Called once at session start; an error yields an empty list.
func ExtractTerminology(ctx context.Context, binding llm.Binding, sessionID string, pointTexts []string) []string {
	if len(pointTexts) == 0 {
		return nil
	}
	out, err := binding.WithSystemPrompt(terminologySystemPrompt).
		CompleteWithRetry(ctx, sessionID, []llm.Message{
			{Role: llm.RoleUser, Content: "Material:\n" + strings.Join(pointTexts, "\n")},
		})
	if err != nil {
		slog.Warn("Terminology extraction failed", "session_id", sessionID, "error", err)
		return nil
	}
	var terms []string
	if err := llm.ExtractJSON(out.Text, &terms); err != nil {
		slog.Warn("Terminology extraction returned unparseable JSON",
			"session_id", sessionID, "error", err)
		return nil
	}
	return terms
}

// Process transforms one raw input. It never fails: on any LLM or parse
// error the raw text passes through unchanged.
func (p *Pipeline) Process(ctx context.Context, sessionID, rawText string, source Source) Result {
	if strings.TrimSpace(rawText) == "" {
		return Result{}
	}

	passthrough := Result{
		DisplayText: rawText,
		LLMText:     rawText,
		HasNotation: notationPattern.MatchString(rawText),
	}

	var prompt string
	switch {
	case source == SourceTyped && !p.notationEnabled:
		return passthrough
	case source == SourceTyped:
		prompt = notationOnlySystemPrompt
	default:
		prompt = correctionSystemPrompt
	}

	out, err := p.binding.WithSystemPrompt(prompt).
		CompleteWithRetry(ctx, sessionID, []llm.Message{
			{Role: llm.RoleUser, Content: p.buildRequest(rawText)},
		})
	if err != nil {
		slog.Warn("Transcription call failed, passing input through",
			"session_id", sessionID, "error", err)
		return passthrough
	}

	var parsed struct {
		DisplayText string       `json:"display_text"`
		LLMText     string       `json:"llm_text"`
		Corrections []Correction `json:"corrections"`
	}
	if err := llm.ExtractJSON(out.Text, &parsed); err != nil {
		slog.Warn("Transcription returned unparseable JSON, passing input through",
			"session_id", sessionID, "error", err)
		return passthrough
	}
	if parsed.DisplayText == "" {
		parsed.DisplayText = rawText
	}
	if parsed.LLMText == "" {
		parsed.LLMText = parsed.DisplayText
	}

	return Result{
		DisplayText: parsed.DisplayText,
		LLMText:     parsed.LLMText,
		Corrections: parsed.Corrections,
		HasNotation: notationPattern.MatchString(parsed.DisplayText),
	}
}

func (p *Pipeline) buildRequest(rawText string) string {
	var sb strings.Builder
	if len(p.terminology) > 0 {
		fmt.Fprintf(&sb, "Domain vocabulary: %s\n\n", strings.Join(p.terminology, ", "))
	}
	fmt.Fprintf(&sb, "Input: %s", rawText)
	return sb.String()
}
