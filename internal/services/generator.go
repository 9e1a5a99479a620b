package services

import (
	"context"

	"alfredoptarigan/cover-letter/internal/config"
)

// TextGenerator is a loaded causal language model behind some inference backend.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, params SamplingParams) (string, error)
	CheckModel(ctx context.Context) error
}

// SamplingParams are the decoding controls passed with every generation.
// Generation also stops at the model's own end-of-sequence token.
type SamplingParams struct {
	MaxTokens     int
	DoSample      bool
	Temperature   float32
	TopP          float32
	StopSequences []string
}

func NewSamplingParams(cfg config.GenerationConfig) SamplingParams {
	return SamplingParams{
		MaxTokens:     cfg.MaxTokens,
		DoSample:      cfg.DoSample,
		Temperature:   cfg.Temperature,
		TopP:          cfg.TopP,
		StopSequences: cfg.StopSequences,
	}
}

// effective returns the temperature and top-p actually sent to a backend.
// Greedy decoding is expressed as temperature 0 with top-p 1.
func (p SamplingParams) effective() (temperature float32, topP float32) {
	if !p.DoSample {
		return 0, 1
	}
	return p.Temperature, p.TopP
}
