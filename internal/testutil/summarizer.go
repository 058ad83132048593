package testutil

import (
	"context"
	"sync"
	"sync/atomic"
)

// FakeSummarizer is a scriptable summarizer for orchestration tests.
// When Gate is non-nil each call blocks until a value is sent on it or the
// context ends; Started receives one value per call as it begins.
type FakeSummarizer struct {
	Response string
	Err      error
	Gate     chan struct{}
	Started  chan string

	calls atomic.Int32

	mu      sync.Mutex
	prompts []string
}

func (f *FakeSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.Started != nil {
		f.Started <- prompt
	}
	if f.Gate != nil {
		select {
		case <-f.Gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.Err != nil {
		return "", f.Err
	}
	return f.Response, nil
}

// Calls returns the number of Summarize invocations so far.
func (f *FakeSummarizer) Calls() int {
	return int(f.calls.Load())
}

// Prompts returns a copy of every prompt received, in call order.
func (f *FakeSummarizer) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.prompts))
	copy(out, f.prompts)
	return out
}
