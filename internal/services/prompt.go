package services

import (
	"strings"
)

// DefaultCoverLetterTemplate is the instruction sent to the model. The
// {jobTitle}, {company} and {resumeSummary} placeholders are replaced verbatim.
const DefaultCoverLetterTemplate = `Write a professional cover letter applying for the position of {jobTitle} at {company}.

Candidate background: {resumeSummary}

Do not repeat statements.
Do not include any non alphabet characters.
Do not repeat the prompt.
The letter should sound natural and engaging, highlighting the candidate's passion, relevant skills, and how they can contribute to the team. Use a formal, professional tone and include a polite closing.

Start with "Dear Hiring Manager,"`

type PromptBuilder struct {
	template string
}

func NewPromptBuilder() *PromptBuilder {
	return NewPromptBuilderWithTemplate(DefaultCoverLetterTemplate)
}

func NewPromptBuilderWithTemplate(template string) *PromptBuilder {
	return &PromptBuilder{template: template}
}

// BuildCoverLetterPrompt interpolates the already validated fields into the template.
func (pb *PromptBuilder) BuildCoverLetterPrompt(jobTitle, company, resumeSummary string) string {
	replacer := strings.NewReplacer(
		"{jobTitle}", jobTitle,
		"{company}", company,
		"{resumeSummary}", resumeSummary,
	)
	return replacer.Replace(pb.template)
}

// TrimEchoedPrompt strips prompt from the start of generated when the backend
// echoed it back. Only an exact prefix is removed.
func TrimEchoedPrompt(generated, prompt string) string {
	if prompt != "" && strings.HasPrefix(generated, prompt) {
		return strings.TrimSpace(generated[len(prompt):])
	}
	return generated
}
