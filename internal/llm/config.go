package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the LLM subsystem. Drafting is disabled
// unless explicitly enabled and given an API key.
type Config struct {
	Enabled     bool
	LogCalls    bool
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	TimeoutMs   int
	MaxRetries  int
}

// DefaultConfig returns a Config with sensible defaults. LLM drafting is
// off by default.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		LogCalls:    false,
		BaseURL:     "",
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
		MaxTokens:   2048,
		TimeoutMs:   30000,
		MaxRetries:  1,
	}
}

// LoadConfig reads LLM configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BRIGADE_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BRIGADE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BRIGADE_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("BRIGADE_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("BRIGADE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("BRIGADE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("BRIGADE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
