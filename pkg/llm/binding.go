package llm

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Binding is an immutable pairing of a Client with a system prompt and
// generation parameters. Every collaborator gets its own Binding by
// construction — the rabbithole agent can never share the tutor's persona.
type Binding struct {
	client  Client
	config  GenerationConfig
	timeout time.Duration
}

// NewBinding creates a binding. A zero timeout falls back to 60 seconds.
func NewBinding(client Client, config GenerationConfig, timeout time.Duration) Binding {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return Binding{client: client, config: config, timeout: timeout}
}

// WithSystemPrompt derives a binding with a different persona, sharing the
// client and everything else.
func (b Binding) WithSystemPrompt(prompt string) Binding {
	b.config.SystemPrompt = prompt
	return b
}

// SystemPrompt exposes the bound persona, mainly for tests.
func (b Binding) SystemPrompt() string { return b.config.SystemPrompt }

// Complete performs a non-streaming call under the binding's deadline.
func (b Binding) Complete(ctx context.Context, sessionID string, messages []Message) (*Completion, error) {
	callCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	out, err := b.client.Complete(callCtx, &Request{
		SessionID: sessionID,
		Messages:  messages,
		Config:    b.config,
	})
	if err != nil {
		return nil, Categorize(err)
	}
	return out, nil
}

// CompleteWithRetry performs a non-streaming call, retrying once with backoff
// when the failure is retryable (rate_limit, server_error, network, timeout).
// Used by advisory callers; the tutor stream is never retried.
func (b Binding) CompleteWithRetry(ctx context.Context, sessionID string, messages []Message) (*Completion, error) {
	var out *Completion
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 1), ctx)
	err := backoff.Retry(func() error {
		var err error
		out, err = b.Complete(ctx, sessionID, messages)
		if err == nil {
			return nil
		}
		if lerr := Categorize(err); !lerr.Retryable() {
			return backoff.Permanent(lerr)
		}
		return err
	}, bo)
	if err != nil {
		return nil, Categorize(err)
	}
	return out, nil
}

// Stream starts a streaming call. The caller owns the returned cancel and
// must invoke it once the channel is drained.
func (b Binding) Stream(ctx context.Context, sessionID string, messages []Message) (<-chan Chunk, context.CancelFunc, error) {
	callCtx, cancel := context.WithTimeout(ctx, b.timeout)
	ch, err := b.client.Stream(callCtx, &Request{
		SessionID: sessionID,
		Messages:  messages,
		Config:    b.config,
	})
	if err != nil {
		cancel()
		return nil, nil, Categorize(err)
	}
	return ch, cancel, nil
}

// CollectStream drains a chunk channel into the final text and usage.
// Returns the first error chunk encountered, with whatever text preceded it.
func CollectStream(ch <-chan Chunk) (string, Usage, *Error) {
	var sb strings.Builder
	var usage Usage
	for chunk := range ch {
		switch c := chunk.(type) {
		case *TextChunk:
			sb.WriteString(c.Delta)
		case *UsageChunk:
			usage = c.Usage
		case *ErrorChunk:
			return sb.String(), usage, c.Err
		}
	}
	return sb.String(), usage, nil
}
