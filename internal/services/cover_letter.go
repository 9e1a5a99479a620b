package services

import (
	"context"
	"errors"
	"log"

	"alfredoptarigan/cover-letter/internal/models"
)

// MissingFieldsMessage is returned to clients when a required field is empty.
const MissingFieldsMessage = "Please provide jobTitle, company, and resumeSummary"

var ErrMissingFields = errors.New("missing required fields")

// GenerationError wraps any failure raised while generating a letter.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

type CoverLetterService interface {
	Generate(ctx context.Context, req models.GenerateRequest) (string, error)
}

type coverLetterService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	params        SamplingParams
	debug         bool
}

func NewCoverLetterService(
	generator TextGenerator,
	promptBuilder *PromptBuilder,
	params SamplingParams,
	debug bool,
) CoverLetterService {
	return &coverLetterService{
		generator:     generator,
		promptBuilder: promptBuilder,
		params:        params,
		debug:         debug,
	}
}

// Generate validates req, builds the prompt and returns the generated letter.
// It returns ErrMissingFields before any generation when a field is empty,
// and a *GenerationError for everything the backend raises.
func (s *coverLetterService) Generate(ctx context.Context, req models.GenerateRequest) (string, error) {
	req = req.Normalize()
	if !req.Complete() {
		return "", ErrMissingFields
	}

	prompt := s.promptBuilder.BuildCoverLetterPrompt(req.JobTitle, req.Company, req.ResumeSummary)

	if s.debug {
		log.Printf("📝 Cover letter prompt length: %d characters", len(prompt))
	}

	generated, err := s.generator.Generate(ctx, prompt, s.params)
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	return TrimEchoedPrompt(generated, prompt), nil
}
