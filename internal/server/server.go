package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/cover-letter/internal/config"
	"alfredoptarigan/cover-letter/internal/handlers"
	"alfredoptarigan/cover-letter/internal/services"
)

// multipartOverhead leaves room for form fields around the resume file.
const multipartOverhead = 1 << 20

// NewApp wires middleware and routes around an already loaded model runtime.
func NewApp(cfg *config.Config, runtime *services.ModelRuntime, resumeParser services.ResumeParser) *fiber.App {
	coverLetterService := services.NewCoverLetterService(
		runtime.Generator,
		services.NewPromptBuilder(),
		services.NewSamplingParams(cfg.Generation),
		cfg.Server.Debug,
	)

	generateHandler := handlers.NewGenerateHandler(coverLetterService, cfg.Server.ExposeErrorDetails)
	resumeHandler := handlers.NewResumeHandler(
		generateHandler,
		resumeParser,
		cfg.Upload.MaxFileSize,
		cfg.Upload.ResumeMaxChars,
	)
	pageHandler := handlers.NewPageHandler(runtime)

	app := fiber.New(fiber.Config{
		AppName:               "Cover Letter Generator",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		BodyLimit:             int(cfg.Upload.MaxFileSize) + multipartOverhead,
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: !cfg.Server.Debug,
		EnablePrintRoutes:     cfg.Server.Debug,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	app.Get("/", pageHandler.HandleIndex)
	app.Get("/health", pageHandler.HandleHealth)
	app.Post("/generate", generateHandler.HandleGenerate)
	app.Post("/generate/resume", resumeHandler.HandleGenerateFromResume)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
