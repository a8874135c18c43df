package engine

import (
	"fmt"
	"strings"

	"github.com/recollect-ai/recollect/ent"
)

const tutorInstructions = `You are running a conversational recall session. Work through the checklist
below one point at a time: ask questions that make the learner retrieve each
point from memory, never state a point's content before the learner has tried.
Give brief confirmation when they get one, a nudge or a smaller sub-question
when they struggle, and move on naturally. Keep turns short and conversational.`

// tutorPrompt builds the session persona: the set's own discussion prompt,
// the standing instructions, and the checklist contents.
func tutorPrompt(set *ent.RecallSet, targets []*ent.RecallPoint) string {
	var sb strings.Builder
	if set.DiscussionSystemPrompt != "" {
		sb.WriteString(set.DiscussionSystemPrompt)
		sb.WriteString("\n\n")
	}
	sb.WriteString(tutorInstructions)

	fmt.Fprintf(&sb, "\n\nMaterial: %s\n", set.Name)
	if set.Description != "" {
		fmt.Fprintf(&sb, "%s\n", set.Description)
	}
	sb.WriteString("\nChecklist for this session:\n")
	for i, p := range targets {
		fmt.Fprintf(&sb, "%d. %s", i+1, p.Content)
		if p.Context != "" {
			fmt.Fprintf(&sb, " (context: %s)", p.Context)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
