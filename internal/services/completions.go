package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// completionsGenerator talks to an OpenAI-compatible /completions endpoint
// (llama.cpp server, vLLM, text-generation-inference). The prompt is sent as
// raw text so the model continues it like a causal LM.
type completionsGenerator struct {
	baseURL    string
	apiKey     string
	model      string
	echo       bool
	httpClient *http.Client
}

func NewCompletionsGenerator(baseURL, apiKey, model string, echo bool, httpClient *http.Client) TextGenerator {
	return &completionsGenerator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		echo:       echo,
		httpClient: httpClient,
	}
}

type completionRequest struct {
	Model       string   `json:"model"`
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature float32  `json:"temperature"`
	TopP        float32  `json:"top_p"`
	Stop        []string `json:"stop,omitempty"`
	Echo        bool     `json:"echo,omitempty"`
}

type completionResponse struct {
	Choices []completionChoice `json:"choices"`
	Error   *apiError          `json:"error,omitempty"`
}

type completionChoice struct {
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// CheckModel implements TextGenerator.
func (g *completionsGenerator) CheckModel(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("create models request: %w", err)
	}
	g.setHeaders(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("models request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("models endpoint returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// Generate implements TextGenerator.
func (g *completionsGenerator) Generate(ctx context.Context, prompt string, params SamplingParams) (string, error) {
	temperature, topP := params.effective()

	reqBody := completionRequest{
		Model:       g.model,
		Prompt:      prompt,
		MaxTokens:   params.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
		Stop:        params.StopSequences,
		Echo:        g.echo,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	g.setHeaders(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion returned HTTP %d: %s", resp.StatusCode, string(respBytes))
	}

	var completion completionResponse
	if err := json.Unmarshal(respBytes, &completion); err != nil {
		return "", fmt.Errorf("parse completion response: %w", err)
	}

	if completion.Error != nil {
		return "", fmt.Errorf("completion error (%s): %s", completion.Error.Type, completion.Error.Message)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return completion.Choices[0].Text, nil
}

func (g *completionsGenerator) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}
}
