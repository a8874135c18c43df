// Package llmtest provides a scripted in-memory LLM client for tests.
package llmtest

import (
	"context"
	"strings"
	"sync"

	"github.com/recollect-ai/recollect/pkg/llm"
)

// Reply is one scripted response. Exactly one of Text or Err is used.
type Reply struct {
	Text string
	Err  *llm.Error
	// Deltas overrides how Text is split for streaming; when empty the
	// text is emitted word by word.
	Deltas []string
}

// FakeClient returns scripted replies in order and records every request.
// Safe for concurrent use. When the script runs out, it returns Fallback
// (empty string by default).
type FakeClient struct {
	mu       sync.Mutex
	script   []Reply
	requests []*llm.Request

	// Fallback is returned once the script is exhausted.
	Fallback string

	// OnRequest, when set, picks the reply dynamically instead of the
	// script. Return nil to fall through to the script.
	OnRequest func(req *llm.Request) *Reply
}

// NewFakeClient builds a client that plays back the given replies in order.
func NewFakeClient(script ...Reply) *FakeClient {
	return &FakeClient{script: script}
}

// Append adds replies to the end of the script.
func (f *FakeClient) Append(replies ...Reply) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.script = append(f.script, replies...)
}

// Requests returns a copy of every request seen so far.
func (f *FakeClient) Requests() []*llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*llm.Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// LastRequest returns the most recent request, or nil.
func (f *FakeClient) LastRequest() *llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

func (f *FakeClient) next(req *llm.Request) Reply {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.OnRequest != nil {
		if r := f.OnRequest(req); r != nil {
			return *r
		}
	}
	if len(f.script) == 0 {
		return Reply{Text: f.Fallback}
	}
	r := f.script[0]
	f.script = f.script[1:]
	return r
}

// Complete implements llm.Client.
func (f *FakeClient) Complete(ctx context.Context, req *llm.Request) (*llm.Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, llm.Categorize(err)
	}
	r := f.next(req)
	if r.Err != nil {
		return nil, r.Err
	}
	return &llm.Completion{
		Text:       r.Text,
		Usage:      llm.Usage{InputTokens: 10, OutputTokens: llm.CountTokens(r.Text)},
		StopReason: "end_turn",
	}, nil
}

// Stream implements llm.Client.
func (f *FakeClient) Stream(ctx context.Context, req *llm.Request) (<-chan llm.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, llm.Categorize(err)
	}
	r := f.next(req)
	ch := make(chan llm.Chunk, 16)
	go func() {
		defer close(ch)
		if r.Err != nil {
			ch <- &llm.ErrorChunk{Err: r.Err}
			return
		}
		deltas := r.Deltas
		if len(deltas) == 0 {
			deltas = splitWords(r.Text)
		}
		for _, d := range deltas {
			select {
			case ch <- &llm.TextChunk{Delta: d}:
			case <-ctx.Done():
				return
			}
		}
		ch <- &llm.UsageChunk{Usage: llm.Usage{InputTokens: 10, OutputTokens: llm.CountTokens(r.Text)}}
	}()
	return ch, nil
}

// Close implements llm.Client.
func (f *FakeClient) Close() error { return nil }

// splitWords splits text into word-sized deltas that reassemble exactly.
func splitWords(text string) []string {
	if text == "" {
		return nil
	}
	words := strings.SplitAfter(text, " ")
	return words
}
