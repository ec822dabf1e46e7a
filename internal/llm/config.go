package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskCurriculum TaskType = "curriculum"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the upstream completion provider.
type LLMConfig struct {
	LogCalls   bool
	Endpoint   string
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig pointing at Together's OpenAI-compatible
// API. No API key is set.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		LogCalls:   false,
		Endpoint:   "https://api.together.xyz/v1",
		Model:      "mistralai/Mixtral-8x7B-Instruct-v0.1",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskCurriculum: {Temperature: 0.7, MaxTokens: 4096},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("PATHWISE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PATHWISE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PATHWISE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	cfg.APIKey = os.Getenv("PATHWISE_LLM_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("TOGETHER_API_KEY")
	}
	if v := os.Getenv("PATHWISE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PATHWISE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("PATHWISE_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			tc := cfg.Tasks[TaskCurriculum]
			tc.Temperature = f
			cfg.Tasks[TaskCurriculum] = tc
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskCurriculum, "PATHWISE_LLM_CURRICULUM_TIMEOUT_MS")

	return cfg
}

// HasAPIKey reports whether credentials for the provider are configured.
func (c LLMConfig) HasAPIKey() bool { return c.APIKey != "" }

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
