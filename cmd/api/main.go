package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"alfredoptarigan/cover-letter/internal/config"
	"alfredoptarigan/cover-letter/internal/server"
	"alfredoptarigan/cover-letter/internal/services"
)

// modelLoadTimeout bounds the startup availability check only.
const modelLoadTimeout = 2 * time.Minute

var (
	port  string
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "coverletter",
	Short: "Cover letter generation API",
	Long:  "Serves a small web page and a JSON endpoint that turns a job title, company and resume summary into a cover letter.",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "", "port to listen on (default: PORT env var or 5000)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies command line overrides.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()
	if port != "" {
		cfg.Server.Port = port
	}
	if cmd.Flags().Changed("debug") {
		cfg.Server.Debug = debug
	}
	return cfg
}

func loadModel(cfg *config.Config) (*services.ModelRuntime, error) {
	ctx, cancel := context.WithTimeout(context.Background(), modelLoadTimeout)
	defer cancel()
	return services.LoadModel(ctx, cfg.Model)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Load configuration
	cfg := loadConfig(cmd)
	log.Println("✅ Config loaded successfully")

	// Load model once for the process lifetime
	runtime, err := loadModel(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to load model: %v", err)
	}

	app := server.NewApp(cfg, runtime, services.NewResumeParser())
	log.Println("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

	return nil
}
