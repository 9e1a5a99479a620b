package services

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"alfredoptarigan/cover-letter/internal/config"
)

const (
	BackendCompletions = "completions"
	BackendGemini      = "gemini"

	defaultCompletionsURL = "http://localhost:8080/v1"
)

// ModelRuntime is the model state shared by every request. It is built once
// at startup and never mutated.
type ModelRuntime struct {
	Generator TextGenerator
	Name      string
	Backend   string
	Device    string
}

// LoadModel acquires the configured backend and verifies the model is available.
func LoadModel(ctx context.Context, cfg config.ModelConfig) (*ModelRuntime, error) {
	log.Printf("⏳ Loading model %s (%s backend)...\n", cfg.Name, cfg.Backend)

	device, err := SelectDevice(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("failed to select device: %w", err)
	}

	generator, err := newGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := generator.CheckModel(ctx); err != nil {
		return nil, fmt.Errorf("model %s is not available: %w", cfg.Name, err)
	}

	log.Printf("✅ Model loaded on %s\n", device)

	return &ModelRuntime{
		Generator: generator,
		Name:      cfg.Name,
		Backend:   cfg.Backend,
		Device:    device,
	}, nil
}

func newGenerator(ctx context.Context, cfg config.ModelConfig) (TextGenerator, error) {
	switch cfg.Backend {
	case BackendCompletions:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultCompletionsURL
		}
		// No client timeout: generation runs until the backend finishes.
		return NewCompletionsGenerator(baseURL, cfg.APIKey, cfg.Name, cfg.EchoPrompt, &http.Client{}), nil
	case BackendGemini:
		generator, err := NewGeminiGenerator(ctx, cfg.APIKey, cfg.Name, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini backend: %w", err)
		}
		return generator, nil
	default:
		return nil, fmt.Errorf("unsupported model backend: %s", cfg.Backend)
	}
}
