// Package rabbithole contains the tangent detector and the per-tangent agent.
// A rabbithole is a side conversation with its own persona and history that
// never leaks into the main session transcript.
package rabbithole

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/recollect-ai/recollect/pkg/llm"
)

const enterSystemPrompt = `You watch a spaced-repetition study conversation and decide whether the
user's LATEST message is a genuine tangent: a curiosity question that departs
from recalling the current material (e.g. "wait, why does that work?" or an
unrelated topic). Answering the tutor's question is NOT a tangent.

Respond with ONLY a JSON object:
{"enter": false, "topic": "", "confidence": 0.0}

topic is a short noun phrase naming the tangent when enter is true.`

const returnSystemPrompt = `A study conversation is currently inside a tangent discussion. Decide whether
the user's LATEST message signals they want to return to the main review
(e.g. "ok, back to the review", "got it, let's continue").

Respond with ONLY a JSON object:
{"return_to_main": false, "confidence": 0.0}`

// Detection is the enter-verdict for the latest user turn.
type Detection struct {
	Enter      bool
	Topic      string
	Confidence float64
}

// ReturnDetection is the return-verdict while inside a rabbithole.
type ReturnDetection struct {
	ReturnToMain bool
	Confidence   float64
}

// Detector wraps a cheap-model binding with the two thresholds.
type Detector struct {
	binding         llm.Binding
	enterThreshold  float64
	returnThreshold float64
}

// NewDetector creates a Detector. Zero thresholds fall back to the defaults
// (enter 0.7, return 0.6).
func NewDetector(binding llm.Binding, enterThreshold, returnThreshold float64) *Detector {
	if enterThreshold <= 0 {
		enterThreshold = 0.7
	}
	if returnThreshold <= 0 {
		returnThreshold = 0.6
	}
	return &Detector{
		binding:         binding,
		enterThreshold:  enterThreshold,
		returnThreshold: returnThreshold,
	}
}

// DetectEnter decides whether the latest user turn opens a tangent. Errors
// are returned for logging; callers treat them as "no tangent".
func (d *Detector) DetectEnter(ctx context.Context, sessionID, userText string, tail []llm.Message) (Detection, error) {
	out, err := d.binding.WithSystemPrompt(enterSystemPrompt).
		CompleteWithRetry(ctx, sessionID, []llm.Message{
			{Role: llm.RoleUser, Content: detectPrompt(userText, tail)},
		})
	if err != nil {
		return Detection{}, fmt.Errorf("rabbithole enter detection: %w", err)
	}

	var parsed struct {
		Enter      bool    `json:"enter"`
		Topic      string  `json:"topic"`
		Confidence float64 `json:"confidence"`
	}
	if err := llm.ExtractJSON(out.Text, &parsed); err != nil {
		slog.Warn("Rabbithole enter detection returned unparseable JSON",
			"session_id", sessionID, "error", err)
		return Detection{}, nil
	}

	if !parsed.Enter || parsed.Confidence < d.enterThreshold || parsed.Topic == "" {
		return Detection{Confidence: parsed.Confidence}, nil
	}
	return Detection{Enter: true, Topic: parsed.Topic, Confidence: parsed.Confidence}, nil
}

// DetectReturn decides whether the latest user turn closes the tangent.
func (d *Detector) DetectReturn(ctx context.Context, sessionID, userText string, tail []llm.Message) (ReturnDetection, error) {
	out, err := d.binding.WithSystemPrompt(returnSystemPrompt).
		CompleteWithRetry(ctx, sessionID, []llm.Message{
			{Role: llm.RoleUser, Content: detectPrompt(userText, tail)},
		})
	if err != nil {
		return ReturnDetection{}, fmt.Errorf("rabbithole return detection: %w", err)
	}

	var parsed struct {
		ReturnToMain bool    `json:"return_to_main"`
		Confidence   float64 `json:"confidence"`
	}
	if err := llm.ExtractJSON(out.Text, &parsed); err != nil {
		slog.Warn("Rabbithole return detection returned unparseable JSON",
			"session_id", sessionID, "error", err)
		return ReturnDetection{}, nil
	}

	if !parsed.ReturnToMain || parsed.Confidence < d.returnThreshold {
		return ReturnDetection{Confidence: parsed.Confidence}, nil
	}
	return ReturnDetection{ReturnToMain: true, Confidence: parsed.Confidence}, nil
}

func detectPrompt(userText string, tail []llm.Message) string {
	var sb strings.Builder
	if len(tail) > 0 {
		sb.WriteString("Conversation tail:\n")
		for _, m := range tail {
			fmt.Fprintf(&sb, "%s: %s\n", m.Role, m.Content)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Latest user message: %s", userText)
	return sb.String()
}
