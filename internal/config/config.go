package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Model      ModelConfig
	Generation GenerationConfig
	Upload     UploadConfig
}

type ServerConfig struct {
	Port               string
	Env                string
	Debug              bool
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ExposeErrorDetails bool
}

type ModelConfig struct {
	Backend    string
	Name       string
	BaseURL    string
	APIKey     string
	Device     string
	EchoPrompt bool
}

// GenerationConfig holds the sampling parameters sent with every request.
type GenerationConfig struct {
	MaxTokens     int
	DoSample      bool
	Temperature   float32
	TopP          float32
	StopSequences []string
}

type UploadConfig struct {
	MaxFileSize    int64
	ResumeMaxChars int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	env := getEnv("ENV", "development")

	apiKey := getEnv("MODEL_API_KEY", "")
	if apiKey == "" {
		apiKey = getEnv("GEMINI_API_KEY", "")
	}

	return &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "5000"),
			Env:                env,
			Debug:              getEnvAsBool("DEBUG", env == "development"),
			ReadTimeout:        getEnvAsDuration("SERVER_READ_TIMEOUT", "30s"),
			WriteTimeout:       getEnvAsDuration("SERVER_WRITE_TIMEOUT", "0s"),
			ExposeErrorDetails: getEnvAsBool("EXPOSE_ERROR_DETAILS", true),
		},
		Model: ModelConfig{
			Backend:    getEnv("MODEL_BACKEND", "completions"),
			Name:       getEnv("MODEL_NAME", "Qwen/Qwen3-0.6B"),
			BaseURL:    getEnv("MODEL_BASE_URL", ""),
			APIKey:     apiKey,
			Device:     getEnv("MODEL_DEVICE", "auto"),
			EchoPrompt: getEnvAsBool("MODEL_ECHO_PROMPT", false),
		},
		Generation: GenerationConfig{
			MaxTokens:     getEnvAsInt("GENERATION_MAX_TOKENS", 300),
			DoSample:      getEnvAsBool("GENERATION_DO_SAMPLE", true),
			Temperature:   getEnvAsFloat32("GENERATION_TEMPERATURE", 0.7),
			TopP:          getEnvAsFloat32("GENERATION_TOP_P", 0.9),
			StopSequences: getEnvAsList("GENERATION_STOP"),
		},
		Upload: UploadConfig{
			MaxFileSize:    getEnvAsInt64("MAX_FILE_SIZE", 5242880),
			ResumeMaxChars: getEnvAsInt("RESUME_MAX_CHARS", 4000),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

// getEnvAsList splits a comma separated value, dropping empty items.
func getEnvAsList(key string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
