package llm

import (
	"context"
	"fmt"
	"io"

	llmv1 "github.com/recollect-ai/recollect/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient implements Client by calling the LLM service via gRPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient creates a new gRPC LLM client. Dialing is lazy; the actual
// connection happens on the first RPC.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Complete sends a conversation and returns the full response.
func (c *GRPCClient) Complete(ctx context.Context, req *Request) (*Completion, error) {
	resp, err := c.client.Complete(ctx, toProtoRequest(req))
	if err != nil {
		return nil, Categorize(err)
	}
	out := &Completion{
		Text:       resp.Text,
		StopReason: resp.StopReason,
	}
	if resp.Usage != nil {
		out.Usage = Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		}
	}
	return out, nil
}

// Stream sends a conversation and returns a channel of chunks.
func (c *GRPCClient) Stream(ctx context.Context, req *Request) (<-chan Chunk, error) {
	stream, err := c.client.Stream(ctx, toProtoRequest(req))
	if err != nil {
		return nil, Categorize(err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Err: Categorize(err)}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoResponse(resp)
			if chunk == nil {
				continue
			}
			select {
			case ch <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func toProtoRequest(req *Request) *llmv1.CompleteRequest {
	out := &llmv1.CompleteRequest{
		SessionId: req.SessionID,
		Messages:  make([]*llmv1.ConversationMessage, len(req.Messages)),
		Config: &llmv1.GenerationConfig{
			Model:        req.Config.Model,
			SystemPrompt: req.Config.SystemPrompt,
			MaxTokens:    int32(req.Config.MaxTokens),
			Temperature:  float32(req.Config.Temperature),
		},
	}
	for i, m := range req.Messages {
		out.Messages[i] = &llmv1.ConversationMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}
	return out
}

func fromProtoResponse(resp *llmv1.StreamResponse) Chunk {
	switch c := resp.Content.(type) {
	case *llmv1.StreamResponse_Text:
		return &TextChunk{Delta: c.Text.Content}
	case *llmv1.StreamResponse_Usage:
		return &UsageChunk{Usage: Usage{
			InputTokens:  int(c.Usage.InputTokens),
			OutputTokens: int(c.Usage.OutputTokens),
		}}
	case *llmv1.StreamResponse_Error:
		return &ErrorChunk{Err: NewError(CategorizeCode(c.Error.Code), c.Error.Message, nil)}
	default:
		return nil
	}
}
