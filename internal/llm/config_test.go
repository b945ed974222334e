package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"BRIGADE_LLM_ENABLED", "BRIGADE_LLM_API_KEY", "OPENAI_API_KEY",
		"BRIGADE_LLM_MODEL", "BRIGADE_LLM_TIMEOUT_MS", "BRIGADE_LLM_MAX_RETRIES",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("BRIGADE_LLM_ENABLED", "true")
	t.Setenv("BRIGADE_LLM_API_KEY", "sk-test")
	t.Setenv("BRIGADE_LLM_MODEL", "gpt-4o")
	t.Setenv("BRIGADE_LLM_TIMEOUT_MS", "10000")
	t.Setenv("BRIGADE_LLM_MAX_RETRIES", "3")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadConfig_OpenAIKeyFallback(t *testing.T) {
	t.Setenv("BRIGADE_LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-fallback")

	cfg := LoadConfig()
	assert.Equal(t, "sk-fallback", cfg.APIKey)
}

func TestLoadConfig_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("BRIGADE_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("BRIGADE_LLM_MAX_RETRIES", "-5")

	cfg := LoadConfig()
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLogObserver(t *testing.T) {
	var sb strings.Builder
	obs := NewLogObserver(&sb)

	obs.OnCallComplete(CallEvent{Model: "gpt-4o-mini", LatencyMs: 123, Success: true})
	obs.OnCallComplete(CallEvent{Model: "gpt-4o-mini", LatencyMs: 456, Success: false, ErrorCode: "TIMEOUT"})

	out := sb.String()
	assert.Contains(t, out, "llm_call model=gpt-4o-mini latency_ms=123 status=ok")
	assert.Contains(t, out, "latency_ms=456 status=err:TIMEOUT")
}
