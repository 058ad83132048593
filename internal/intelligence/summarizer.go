package intelligence

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/cardboard/internal/llm"
)

// ErrSummarization is matched by every *SummarizationError.
var ErrSummarization = errors.New("summarization failed")

// SummarizationError reports a failed summarization call. Cause carries the
// transport, timeout, quota or output error behind it.
type SummarizationError struct {
	Cause error
}

func (e *SummarizationError) Error() string {
	if e.Cause == nil {
		return ErrSummarization.Error()
	}
	return ErrSummarization.Error() + ": " + e.Cause.Error()
}

// Is lets errors.Is match ErrSummarization.
func (e *SummarizationError) Is(target error) bool { return target == ErrSummarization }

func (e *SummarizationError) Unwrap() error { return e.Cause }

// Summarizer turns a prompt into generated text.
type Summarizer interface {
	// Summarize makes exactly one model call and keeps no state between calls.
	Summarize(ctx context.Context, prompt string) (string, error)
}

type prdSummarizer struct {
	client   llm.LLMClient
	observer llm.Observer
}

// NewPRDSummarizer creates a Summarizer that asks client for a PRD summary.
func NewPRDSummarizer(client llm.LLMClient, observer llm.Observer) Summarizer {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &prdSummarizer{client: client, observer: observer}
}

func (s *prdSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", &SummarizationError{Cause: errors.New("empty prompt")}
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummarize,
		SystemPrompt: prdSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return "", &SummarizationError{Cause: err}
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", &SummarizationError{Cause: llm.ErrEmptyResponse}
	}
	return resp.Text, nil
}

// DisabledSummarizer fails every call. It stands in when no LLM provider is
// configured so generation reports a clear cause instead of a nil pointer.
type DisabledSummarizer struct{}

func (DisabledSummarizer) Summarize(context.Context, string) (string, error) {
	return "", &SummarizationError{Cause: errors.New("llm is disabled (set CARDBOARD_LLM_ENABLED=true)")}
}
