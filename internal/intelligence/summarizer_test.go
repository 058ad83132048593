package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexanderramin/cardboard/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLLMClient returns a fixed response for testing.
type mockLLMClient struct {
	response string
	err      error
	calls    int
	lastReq  llm.GenerateRequest
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "llama3.2"}, nil
}

func (m *mockLLMClient) Available(_ context.Context) bool { return m.err == nil }

func TestPRDSummarizer_Success(t *testing.T) {
	client := &mockLLMClient{response: "Problem Statement\nCats win."}
	s := NewPRDSummarizer(client, llm.NoopObserver{})

	out, err := s.Summarize(context.Background(), "Main Idea: cats")

	require.NoError(t, err)
	assert.Equal(t, "Problem Statement\nCats win.", out)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, llm.TaskSummarize, client.lastReq.Task)
	assert.Equal(t, "Main Idea: cats", client.lastReq.UserPrompt)
	assert.Equal(t, prdSystemPrompt, client.lastReq.SystemPrompt)
}

func TestPRDSummarizer_WrapsTransportErrors(t *testing.T) {
	for _, cause := range []error{llm.ErrUnavailable, llm.ErrTimeout, llm.ErrQuotaExceeded, llm.ErrCanceled} {
		t.Run(cause.Error(), func(t *testing.T) {
			client := &mockLLMClient{err: cause}
			s := NewPRDSummarizer(client, nil)

			_, err := s.Summarize(context.Background(), "prompt")

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSummarization)
			assert.ErrorIs(t, err, cause)
			var serr *SummarizationError
			require.True(t, errors.As(err, &serr))
			assert.Contains(t, serr.Error(), cause.Error())
			assert.Equal(t, 1, client.calls, "adapter must not retry")
		})
	}
}

func TestPRDSummarizer_BlankOutputIsFailure(t *testing.T) {
	s := NewPRDSummarizer(&mockLLMClient{response: "   "}, nil)

	_, err := s.Summarize(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrSummarization)
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}

func TestPRDSummarizer_EmptyPromptSkipsCall(t *testing.T) {
	client := &mockLLMClient{response: "x"}
	s := NewPRDSummarizer(client, nil)

	_, err := s.Summarize(context.Background(), " ")

	assert.ErrorIs(t, err, ErrSummarization)
	assert.Equal(t, 0, client.calls)
}

func TestDisabledSummarizer(t *testing.T) {
	_, err := DisabledSummarizer{}.Summarize(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrSummarization)
}

// TestPRDSummarizer_OllamaTimeout runs the adapter against a slow HTTP server
// through the real Ollama client.
func TestPRDSummarizer_OllamaTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		json.NewEncoder(w).Encode(map[string]string{"model": "llama3.2", "response": "late"})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Tasks = map[llm.TaskType]llm.TaskConfig{llm.TaskSummarize: {TimeoutMs: 50}}

	s := NewPRDSummarizer(llm.NewOllamaClient(cfg, llm.NoopObserver{}), nil)
	_, err := s.Summarize(context.Background(), "Main Idea: slow")

	assert.ErrorIs(t, err, ErrSummarization)
	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestPRDSummarizer_OllamaSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Main Idea: fast", body["prompt"])
		json.NewEncoder(w).Encode(map[string]string{"model": "llama3.2", "response": "Goals\n- ship"})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL

	s := NewPRDSummarizer(llm.NewOllamaClient(cfg, llm.NoopObserver{}), nil)
	out, err := s.Summarize(context.Background(), "Main Idea: fast")

	require.NoError(t, err)
	assert.Equal(t, "Goals\n- ship", out)
}
