// Package llm defines the client contract for the external LLM service and
// the per-component bindings (tutor, evaluator, detector, transcriber) built
// on top of it.
package llm

import "context"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn sent to the LLM.
type Message struct {
	Role    string
	Content string
}

// GenerationConfig selects the model and sampling parameters for one call.
// SystemPrompt travels here rather than as a leading message so each Binding
// can carry its own immutable persona.
type GenerationConfig struct {
	Model        string
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
}

// Request groups the inputs of one LLM call.
type Request struct {
	SessionID string
	Messages  []Message
	Config    GenerationConfig
}

// Usage reports token consumption for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Completion is the result of a non-streaming call.
type Completion struct {
	Text       string
	Usage      Usage
	StopReason string
}

// Client is the Go-side interface for calling the LLM service.
// Streaming follows the channel-of-chunks idiom: the returned channel is
// closed when the stream completes, and errors are delivered as ErrorChunk
// values rather than a second channel.
type Client interface {
	// Complete sends a conversation and returns the full response.
	Complete(ctx context.Context, req *Request) (*Completion, error)

	// Stream sends a conversation and returns a finite, non-restartable
	// sequence of chunks.
	Stream(ctx context.Context, req *Request) (<-chan Chunk, error)

	// Close releases the underlying connection.
	Close() error
}

// Chunk is the interface for streaming chunk types.
type Chunk interface {
	chunkType() chunkType
}

type chunkType string

const (
	chunkText  chunkType = "text"
	chunkUsage chunkType = "usage"
	chunkError chunkType = "error"
)

// TextChunk is an incremental piece of the response text.
type TextChunk struct{ Delta string }

// UsageChunk reports token consumption; arrives at most once, at the end.
type UsageChunk struct{ Usage Usage }

// ErrorChunk signals a provider error mid-stream.
type ErrorChunk struct{ Err *Error }

func (c *TextChunk) chunkType() chunkType  { return chunkText }
func (c *UsageChunk) chunkType() chunkType { return chunkUsage }
func (c *ErrorChunk) chunkType() chunkType { return chunkError }
