package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "DEBUG", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"EXPOSE_ERROR_DETAILS", "MODEL_BACKEND", "MODEL_NAME", "MODEL_BASE_URL",
		"MODEL_API_KEY", "GEMINI_API_KEY", "MODEL_DEVICE", "MODEL_ECHO_PROMPT",
		"GENERATION_MAX_TOKENS", "GENERATION_DO_SAMPLE", "GENERATION_TEMPERATURE",
		"GENERATION_TOP_P", "GENERATION_STOP", "MAX_FILE_SIZE", "RESUME_MAX_CHARS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, time.Duration(0), cfg.Server.WriteTimeout)
	assert.True(t, cfg.Server.ExposeErrorDetails)

	assert.Equal(t, "completions", cfg.Model.Backend)
	assert.Equal(t, "Qwen/Qwen3-0.6B", cfg.Model.Name)
	assert.Equal(t, "auto", cfg.Model.Device)
	assert.False(t, cfg.Model.EchoPrompt)

	assert.Equal(t, 300, cfg.Generation.MaxTokens)
	assert.True(t, cfg.Generation.DoSample)
	assert.InDelta(t, 0.7, cfg.Generation.Temperature, 1e-6)
	assert.InDelta(t, 0.9, cfg.Generation.TopP, 1e-6)
	assert.Nil(t, cfg.Generation.StopSequences)

	assert.Equal(t, int64(5242880), cfg.Upload.MaxFileSize)
	assert.Equal(t, 4000, cfg.Upload.ResumeMaxChars)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_WRITE_TIMEOUT", "2m")
	t.Setenv("EXPOSE_ERROR_DETAILS", "false")
	t.Setenv("MODEL_BACKEND", "gemini")
	t.Setenv("MODEL_NAME", "gemini-2.5-flash")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("MODEL_DEVICE", "cpu")
	t.Setenv("GENERATION_MAX_TOKENS", "512")
	t.Setenv("GENERATION_TEMPERATURE", "0.2")
	t.Setenv("GENERATION_TOP_P", "0.5")
	t.Setenv("GENERATION_STOP", " </s>, ,<|im_end|>")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.False(t, cfg.Server.Debug, "debug follows ENV when unset")
	assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout)
	assert.False(t, cfg.Server.ExposeErrorDetails)
	assert.Equal(t, "gemini", cfg.Model.Backend)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model.Name)
	assert.Equal(t, "gemini-key", cfg.Model.APIKey)
	assert.Equal(t, "cpu", cfg.Model.Device)
	assert.Equal(t, 512, cfg.Generation.MaxTokens)
	assert.InDelta(t, 0.2, cfg.Generation.Temperature, 1e-6)
	assert.InDelta(t, 0.5, cfg.Generation.TopP, 1e-6)
	assert.Equal(t, []string{"</s>", "<|im_end|>"}, cfg.Generation.StopSequences)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENERATION_MAX_TOKENS", "lots")
	t.Setenv("GENERATION_TEMPERATURE", "warm")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	t.Setenv("DEBUG", "maybe")

	cfg := Load()

	assert.Equal(t, 300, cfg.Generation.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Generation.Temperature, 1e-6)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Server.Debug)
}

func TestLoad_ModelAPIKeyWinsOverGeminiKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODEL_API_KEY", "model-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	assert.Equal(t, "model-key", Load().Model.APIKey)
}
