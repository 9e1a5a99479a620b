package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"alfredoptarigan/cover-letter/internal/models"
	"alfredoptarigan/cover-letter/internal/services"
)

var (
	jobTitle      string
	company       string
	resumeSummary string
	resumeFile    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single cover letter and print it",
	RunE:  runGenerate,
	// Usage is noise once the model is loaded and generation has failed
	SilenceUsage: true,
}

func init() {
	generateCmd.Flags().StringVar(&jobTitle, "job-title", "", "position being applied for")
	generateCmd.Flags().StringVar(&company, "company", "", "company being applied to")
	generateCmd.Flags().StringVar(&resumeSummary, "resume-summary", "", "short summary of the candidate")
	generateCmd.Flags().StringVar(&resumeFile, "resume-file", "", "resume (.pdf, .docx or .txt) used instead of --resume-summary")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig(cmd)

	req := models.GenerateRequest{
		JobTitle:      jobTitle,
		Company:       company,
		ResumeSummary: resumeSummary,
	}

	if resumeFile != "" {
		data, err := os.ReadFile(resumeFile)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		text, err := services.NewResumeParser().ExtractText(resumeFile, data)
		if err != nil {
			return err
		}
		req.ResumeSummary = services.TruncateText(text, cfg.Upload.ResumeMaxChars)
	}

	// Validate before paying for a model load
	if !req.Normalize().Complete() {
		return errors.New(services.MissingFieldsMessage)
	}

	runtime, err := loadModel(cfg)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	coverLetterService := services.NewCoverLetterService(
		runtime.Generator,
		services.NewPromptBuilder(),
		services.NewSamplingParams(cfg.Generation),
		cfg.Server.Debug,
	)

	letter, err := coverLetterService.Generate(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), letter)
	return nil
}
