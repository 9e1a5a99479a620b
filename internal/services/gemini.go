package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

type geminiGenerator struct {
	client    *genai.Client
	modelName string
}

// NewGeminiGenerator creates a generator backed by the Gemini API. baseURL is
// only needed to point the SDK at a proxy.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName, baseURL string) (TextGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini backend requires MODEL_API_KEY or GEMINI_API_KEY")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiGenerator{
		client:    client,
		modelName: modelName,
	}, nil
}

// CheckModel implements TextGenerator.
func (g *geminiGenerator) CheckModel(ctx context.Context) error {
	if _, err := g.client.Models.Get(ctx, g.modelName, nil); err != nil {
		return fmt.Errorf("failed to get model %s: %w", g.modelName, err)
	}
	return nil
}

// Generate implements TextGenerator.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string, params SamplingParams) (string, error) {
	temperature, topP := params.effective()

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		MaxOutputTokens: int32(params.MaxTokens),
		StopSequences:   params.StopSequences,
		CandidateCount:  1,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
