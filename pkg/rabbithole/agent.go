package rabbithole

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/recollect-ai/recollect/pkg/llm"
)

const agentSystemPromptTemplate = `You are an enthusiastic guide exploring a tangent with a curious learner.
The learner is mid-way through reviewing "%s"%s and got curious about: %s.

Explore the topic openly and directly — explain, give examples, follow the
learner's curiosity. Do NOT quiz them and do NOT steer back to the review;
the session handles that. Keep responses focused and conversational.`

// entry is one history item with its wall-clock timestamp.
type entry struct {
	msg llm.Message
	at  time.Time
}

// Agent runs one tangent conversation. It exclusively owns its history and
// its LLM binding; the parent session only holds a reference for re-entry.
type Agent struct {
	binding   llm.Binding
	sessionID string
	topic     string
	depth     int

	mu      sync.Mutex
	history []entry
}

// NewAgent builds an agent with its own exploratory persona, parameterized by
// the tangent topic and the recall set it interrupts.
func NewAgent(binding llm.Binding, sessionID, topic, setName, setDescription string, depth int) *Agent {
	desc := ""
	if setDescription != "" {
		desc = fmt.Sprintf(" (%s)", setDescription)
	}
	return &Agent{
		binding:   binding.WithSystemPrompt(fmt.Sprintf(agentSystemPromptTemplate, setName, desc, topic)),
		sessionID: sessionID,
		topic:     topic,
		depth:     depth,
	}
}

// Topic returns the tangent topic.
func (a *Agent) Topic() string { return a.topic }

// Depth returns the nesting depth (1 for a top-level tangent).
func (a *Agent) Depth() int { return a.depth }

// Open synthesizes the opening exchange. The synthetic user turn exists
// because providers require conversations to begin with role user; it is
// recorded in the history alongside the assistant's reply.
func (a *Agent) Open(ctx context.Context) (string, error) {
	opener := llm.Message{
		Role:    llm.RoleUser,
		Content: fmt.Sprintf("I'd like to dig into: %s", a.topic),
	}

	out, err := a.binding.Complete(ctx, a.sessionID, []llm.Message{opener})
	if err != nil {
		return "", fmt.Errorf("rabbithole open: %w", err)
	}

	a.record(opener, llm.Message{Role: llm.RoleAssistant, Content: out.Text})
	return out.Text, nil
}

// Respond appends the user turn and re-sends the full tangent conversation.
func (a *Agent) Respond(ctx context.Context, userText string) (string, error) {
	userMsg := llm.Message{Role: llm.RoleUser, Content: userText}
	messages := append(a.History(), userMsg)

	out, err := a.binding.Complete(ctx, a.sessionID, messages)
	if err != nil {
		return "", fmt.Errorf("rabbithole respond: %w", err)
	}

	a.record(userMsg, llm.Message{Role: llm.RoleAssistant, Content: out.Text})
	return out.Text, nil
}

func (a *Agent) record(msgs ...llm.Message) {
	now := time.Now()
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, m := range msgs {
		a.history = append(a.history, entry{msg: m, at: now})
	}
}

// History returns a defensive copy of the tangent conversation.
func (a *Agent) History() []llm.Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]llm.Message, len(a.history))
	for i, e := range a.history {
		out[i] = e.msg
	}
	return out
}

// HistoryMaps renders the history in the persisted JSON shape.
func (a *Agent) HistoryMaps() []map[string]interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]map[string]interface{}, len(a.history))
	for i, e := range a.history {
		out[i] = map[string]interface{}{
			"role":      string(e.msg.Role),
			"content":   e.msg.Content,
			"timestamp": e.at.UTC().Format(time.RFC3339),
		}
	}
	return out
}
