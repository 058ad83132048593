package llm

import (
	"os"
	"strconv"
	"strings"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskSummarize TaskType = "summarize"
)

// Provider selects the LLM backend.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderOpenAI Provider = "openai"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled   bool
	LogCalls  bool
	Provider  Provider
	Endpoint  string
	Model     string
	APIKey    string
	TimeoutMs int
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:   false,
		LogCalls:  false,
		Provider:  ProviderOllama,
		Endpoint:  "http://localhost:11434",
		Model:     "llama3.2",
		TimeoutMs: 30000,
		Tasks: map[TaskType]TaskConfig{
			TaskSummarize: {Temperature: 0.3, MaxTokens: 2048, TimeoutMs: 60000},
		},
	}
}

// Provider defaults applied when the endpoint or model is not set explicitly.
var providerDefaults = map[Provider]struct{ Endpoint, Model string }{
	ProviderOllama: {Endpoint: "http://localhost:11434", Model: "llama3.2"},
	ProviderOpenAI: {Endpoint: "https://api.openai.com/v1/", Model: "gpt-4o-mini"},
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("CARDBOARD_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CARDBOARD_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CARDBOARD_LLM_PROVIDER"); v != "" {
		p := Provider(strings.ToLower(v))
		if d, ok := providerDefaults[p]; ok {
			cfg.Provider = p
			cfg.Endpoint = d.Endpoint
			cfg.Model = d.Model
		}
	}
	if v := os.Getenv("CARDBOARD_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CARDBOARD_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	cfg.APIKey = os.Getenv("CARDBOARD_LLM_API_KEY")
	if cfg.APIKey == "" && cfg.Provider == ProviderOpenAI {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if v := os.Getenv("CARDBOARD_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskSummarize, "CARDBOARD_LLM_SUMMARIZE_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
