package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cover-letter/internal/models"
	"alfredoptarigan/cover-letter/internal/services"
	"alfredoptarigan/cover-letter/web"
)

type PageHandler struct {
	runtime *services.ModelRuntime
}

func NewPageHandler(runtime *services.ModelRuntime) *PageHandler {
	return &PageHandler{runtime: runtime}
}

// HandleIndex serves the static form page.
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(web.IndexHTML)
}

func (h *PageHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:  "healthy",
		Model:   h.runtime.Name,
		Backend: h.runtime.Backend,
		Device:  h.runtime.Device,
		Time:    time.Now().Format(time.RFC3339),
	})
}
