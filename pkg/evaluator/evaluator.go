// Package evaluator decides, after each user turn, which unchecked recall
// points the user has just demonstrated. It is advisory: every failure mode
// degrades to "no demonstrations" and the session continues.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/recollect-ai/recollect/pkg/fsrs"
	"github.com/recollect-ai/recollect/pkg/llm"
)

const systemPrompt = `You are a strict recall evaluator for a spaced-repetition tutoring session.
You are given a checklist of knowledge points and the most recent conversation turns.
Decide which checklist points the user's LATEST message genuinely demonstrates
from memory. Paraphrases count; the tutor stating the fact does not. A question
from the user demonstrates nothing.

Respond with ONLY a JSON object of this exact shape:
{"demonstrated": [{"point_id": "...", "confidence": 0.0, "reasoning": "..."}], "overall_feedback": "..."}

confidence is your probability in [0,1] that the point was recalled. List only
points you actually observed; an empty list is the common case.`

// Point is one unchecked checklist entry shown to the evaluator.
type Point struct {
	ID      string
	Content string
	Context string
}

// Message is one transcript entry with its session index.
type Message struct {
	Index   int
	Role    string
	Content string
}

// Input carries everything one evaluation needs.
type Input struct {
	SessionID       string
	SetName         string
	SetDescription  string
	RecentMessages  []Message // last N turns, oldest first
	UncheckedPoints []Point
	JustRecalledIDs []string // suppress re-crediting within the same burst
}

// Demonstration is one accepted recall verdict.
type Demonstration struct {
	PointID           string
	Confidence        float64
	Rating            fsrs.Rating
	Reasoning         string
	MessageIndexStart int
	MessageIndexEnd   int
}

// Evaluation is the filtered evaluator output.
type Evaluation struct {
	Demonstrated    []Demonstration
	OverallFeedback string
}

// Evaluator wraps a utility-model binding with the acceptance threshold.
type Evaluator struct {
	binding   llm.Binding
	threshold float64
}

// New creates an Evaluator. The binding should carry the cheap utility model;
// its persona is replaced with the evaluator prompt.
func New(binding llm.Binding, threshold float64) *Evaluator {
	if threshold <= 0 {
		threshold = 0.5
	}
	return &Evaluator{
		binding:   binding.WithSystemPrompt(systemPrompt),
		threshold: threshold,
	}
}

// wire mirrors the JSON shape the model is instructed to produce.
type wire struct {
	Demonstrated []struct {
		PointID    string  `json:"point_id"`
		Confidence float64 `json:"confidence"`
		Reasoning  string  `json:"reasoning"`
	} `json:"demonstrated"`
	OverallFeedback string `json:"overall_feedback"`
}

// Evaluate runs one evaluation. Errors are returned for logging but callers
// treat any error as "nothing demonstrated".
func (e *Evaluator) Evaluate(ctx context.Context, input Input) (Evaluation, error) {
	if len(input.UncheckedPoints) == 0 || len(input.RecentMessages) == 0 {
		return Evaluation{}, nil
	}

	out, err := e.binding.CompleteWithRetry(ctx, input.SessionID, []llm.Message{
		{Role: llm.RoleUser, Content: buildPrompt(input)},
	})
	if err != nil {
		return Evaluation{}, fmt.Errorf("evaluator call: %w", err)
	}

	var parsed wire
	if err := llm.ExtractJSON(out.Text, &parsed); err != nil {
		slog.Warn("Evaluator returned unparseable JSON",
			"session_id", input.SessionID, "error", err)
		return Evaluation{}, nil
	}

	unchecked := make(map[string]bool, len(input.UncheckedPoints))
	for _, p := range input.UncheckedPoints {
		unchecked[p.ID] = true
	}
	suppressed := make(map[string]bool, len(input.JustRecalledIDs))
	for _, id := range input.JustRecalledIDs {
		suppressed[id] = true
	}

	start, end := demonstrationSpan(input.RecentMessages)

	eval := Evaluation{OverallFeedback: parsed.OverallFeedback}
	seen := make(map[string]bool)
	for _, d := range parsed.Demonstrated {
		if d.Confidence < e.threshold {
			continue
		}
		// Hallucinated, already-checked, or just-credited ids are dropped.
		if !unchecked[d.PointID] || suppressed[d.PointID] || seen[d.PointID] {
			continue
		}
		seen[d.PointID] = true
		eval.Demonstrated = append(eval.Demonstrated, Demonstration{
			PointID:           d.PointID,
			Confidence:        d.Confidence,
			Rating:            fsrs.RatingFromConfidence(d.Confidence),
			Reasoning:         d.Reasoning,
			MessageIndexStart: start,
			MessageIndexEnd:   end,
		})
	}
	return eval, nil
}

// demonstrationSpan locates the exchange the verdict refers to: from the
// assistant turn preceding the user's last message through that message.
func demonstrationSpan(messages []Message) (int, int) {
	last := messages[len(messages)-1]
	start := last.Index
	for i := len(messages) - 2; i >= 0; i-- {
		if messages[i].Role == string(llm.RoleAssistant) {
			start = messages[i].Index
			break
		}
	}
	if start > last.Index {
		start = last.Index
	}
	return start, last.Index
}

func buildPrompt(input Input) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Recall set: %s\n", input.SetName)
	if input.SetDescription != "" {
		fmt.Fprintf(&sb, "Description: %s\n", input.SetDescription)
	}

	sb.WriteString("\nUnchecked checklist:\n")
	for _, p := range input.UncheckedPoints {
		fmt.Fprintf(&sb, "- id=%s content=%q", p.ID, p.Content)
		if p.Context != "" {
			fmt.Fprintf(&sb, " context=%q", p.Context)
		}
		sb.WriteString("\n")
	}

	if len(input.JustRecalledIDs) > 0 {
		sb.WriteString("\nCredited moments ago, do not re-list: " +
			strings.Join(input.JustRecalledIDs, ", ") + "\n")
	}

	sb.WriteString("\nRecent conversation (oldest first):\n")
	for _, m := range input.RecentMessages {
		fmt.Fprintf(&sb, "[%d] %s: %s\n", m.Index, m.Role, m.Content)
	}
	sb.WriteString("\nEvaluate the latest user message against the checklist.")
	return sb.String()
}
