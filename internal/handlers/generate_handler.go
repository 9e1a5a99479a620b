package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/cover-letter/internal/models"
	"alfredoptarigan/cover-letter/internal/services"
)

const genericGenerationError = "Failed to generate cover letter"

type GenerateHandler struct {
	coverLetterService services.CoverLetterService
	exposeErrorDetails bool
}

func NewGenerateHandler(
	coverLetterService services.CoverLetterService,
	exposeErrorDetails bool,
) *GenerateHandler {
	return &GenerateHandler{
		coverLetterService: coverLetterService,
		exposeErrorDetails: exposeErrorDetails,
	}
}

// HandleGenerate handles POST /generate
func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	return h.generate(c, req)
}

func (h *GenerateHandler) generate(c *fiber.Ctx, req models.GenerateRequest) error {
	requestID := uuid.New().String()
	c.Set("X-Request-ID", requestID)

	letter, err := h.coverLetterService.Generate(c.UserContext(), req)
	if err == nil {
		return c.JSON(models.CoverLetterResponse{CoverLetter: letter})
	}

	if errors.Is(err, services.ErrMissingFields) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: services.MissingFieldsMessage,
		})
	}

	log.Printf("❌ Cover letter generation failed (request %s): %v\n", requestID, err)

	message := genericGenerationError
	if h.exposeErrorDetails {
		message = err.Error()
	}

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: message,
	})
}
