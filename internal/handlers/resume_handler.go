package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cover-letter/internal/models"
	"alfredoptarigan/cover-letter/internal/services"
)

type ResumeHandler struct {
	generateHandler *GenerateHandler
	resumeParser    services.ResumeParser
	maxFileSize     int64
	resumeMaxChars  int
}

func NewResumeHandler(
	generateHandler *GenerateHandler,
	resumeParser services.ResumeParser,
	maxFileSize int64,
	resumeMaxChars int,
) *ResumeHandler {
	return &ResumeHandler{
		generateHandler: generateHandler,
		resumeParser:    resumeParser,
		maxFileSize:     maxFileSize,
		resumeMaxChars:  resumeMaxChars,
	}
}

// HandleGenerateFromResume handles POST /generate/resume. The uploaded resume
// replaces resumeSummary and the request then follows POST /generate.
func (h *ResumeHandler) HandleGenerateFromResume(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "failed to parse multipart form",
		})
	}

	req := models.GenerateRequest{
		JobTitle: firstValue(form.Value["jobTitle"]),
		Company:  firstValue(form.Value["company"]),
	}

	resumeFiles, exists := form.File["resume"]
	if !exists || len(resumeFiles) == 0 {
		// Falls through to the missing fields response
		return h.generateHandler.generate(c, req)
	}
	resumeFile := resumeFiles[0]

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := resumeFile.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("failed to open resume file: %v", err),
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("failed to read resume file: %v", err),
		})
	}

	text, err := h.resumeParser.ExtractText(resumeFile.Filename, data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}

	req.ResumeSummary = services.TruncateText(text, h.resumeMaxChars)

	return h.generateHandler.generate(c, req)
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
