package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequest_Normalize(t *testing.T) {
	req := GenerateRequest{
		JobTitle:      "  Engineer\n",
		Company:       "\tAcme ",
		ResumeSummary: " 5 years Python ",
	}.Normalize()

	assert.Equal(t, "Engineer", req.JobTitle)
	assert.Equal(t, "Acme", req.Company)
	assert.Equal(t, "5 years Python", req.ResumeSummary)
}

func TestGenerateRequest_Complete(t *testing.T) {
	tests := []struct {
		name string
		req  GenerateRequest
		want bool
	}{
		{"all fields", GenerateRequest{"Engineer", "Acme", "5 years Python"}, true},
		{"empty job title", GenerateRequest{"", "Acme", "x"}, false},
		{"missing company", GenerateRequest{JobTitle: "Engineer", ResumeSummary: "x"}, false},
		{"missing resume summary", GenerateRequest{JobTitle: "Engineer", Company: "Acme"}, false},
		{"whitespace only after normalize", GenerateRequest{"Engineer", "Acme", "   "}.Normalize(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Complete())
		})
	}
}
