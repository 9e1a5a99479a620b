package models

import "strings"

type GenerateRequest struct {
	JobTitle      string `json:"jobTitle" form:"jobTitle"`
	Company       string `json:"company" form:"company"`
	ResumeSummary string `json:"resumeSummary" form:"resumeSummary"`
}

// Normalize trims surrounding whitespace from every field.
func (r GenerateRequest) Normalize() GenerateRequest {
	return GenerateRequest{
		JobTitle:      strings.TrimSpace(r.JobTitle),
		Company:       strings.TrimSpace(r.Company),
		ResumeSummary: strings.TrimSpace(r.ResumeSummary),
	}
}

// Complete reports whether all required fields are non-empty.
func (r GenerateRequest) Complete() bool {
	return r.JobTitle != "" && r.Company != "" && r.ResumeSummary != ""
}

type CoverLetterResponse struct {
	CoverLetter string `json:"coverLetter"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Model   string `json:"model"`
	Backend string `json:"backend"`
	Device  string `json:"device"`
	Time    string `json:"time"`
}
