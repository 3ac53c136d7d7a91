// Package config reads process settings once at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
	ProviderHTTP   = "http"
	ProviderMock   = "mock"
)

type Config struct {
	Port     string
	GinMode  string
	Provider string

	// OpenAIAPIKey is not checked here; the provider fails on first use without it.
	OpenAIAPIKey string
	GeminiAPIKey string

	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// Load reads .env from the working directory (if present) and then the environment.
// Variables already set in the environment win over .env.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8000"),
		GinMode:      getEnv("GIN_MODE", "release"),
		Provider:     strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Model:        os.Getenv("LLM_MODEL"),
		BaseURL:      os.Getenv("LLM_BASE_URL"),
	}

	var err error
	if cfg.Temperature, err = strconv.ParseFloat(getEnv("LLM_TEMPERATURE", "0.7"), 64); err != nil {
		return nil, fmt.Errorf("LLM_TEMPERATURE: %w", err)
	}
	if cfg.MaxTokens, err = strconv.Atoi(getEnv("LLM_MAX_TOKENS", "2000")); err != nil {
		return nil, fmt.Errorf("LLM_MAX_TOKENS: %w", err)
	}
	if cfg.MaxTokens <= 0 {
		return nil, fmt.Errorf("LLM_MAX_TOKENS must be positive, got %d", cfg.MaxTokens)
	}

	switch cfg.Provider {
	case ProviderOpenAI, ProviderOllama, ProviderGemini, ProviderHTTP, ProviderMock:
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
