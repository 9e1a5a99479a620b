package services

import (
	"context"
)

// fakeGenerator records prompts and returns a canned response.
type fakeGenerator struct {
	response string
	err      error
	checkErr error

	calls   int
	prompts []string
	params  []SamplingParams
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, params SamplingParams) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.params = append(f.params, params)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeGenerator) CheckModel(_ context.Context) error {
	return f.checkErr
}
