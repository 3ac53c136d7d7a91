package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RahulDoss/AI-Drug-and-vaccine-design/internal/adapters"
	"github.com/RahulDoss/AI-Drug-and-vaccine-design/internal/config"
	"github.com/RahulDoss/AI-Drug-and-vaccine-design/internal/core"
	"github.com/RahulDoss/AI-Drug-and-vaccine-design/internal/handlers"
)

func main() {
	// 1. Configuration (.env + Env Vars)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Dependency Injection (Wiring)
	// The completion client is built once and shared by every request.
	ctx := context.Background()
	llm := newCompletion(ctx, cfg)
	if c, ok := llm.(io.Closer); ok {
		defer c.Close()
	}

	// 3. Service Initialization
	svc := core.NewDiscoveryService(llm)
	handler := handlers.NewHTTPHandler(svc)

	// 4. Router Setup
	router := handlers.NewRouter(handler)

	// 5. Start Server
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	log.Printf("Discovery API (%s) running on port %s", cfg.Provider, cfg.Port)
	waitForShutdown(server)
}

// newCompletion picks the adapter for cfg.Provider. A provider that cannot be
// built does not stop startup; its requests fail with the build error instead.
func newCompletion(ctx context.Context, cfg *config.Config) core.CompletionPort {
	llmCfg := adapters.LLMConfig{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}

	var (
		llm core.CompletionPort
		err error
	)
	switch cfg.Provider {
	case config.ProviderMock:
		return &adapters.MockLLM{Latency: 100 * time.Millisecond}
	case config.ProviderHTTP:
		return adapters.NewLLM(llmCfg)
	case config.ProviderOllama:
		llm, err = adapters.NewOllama(llmCfg)
	case config.ProviderGemini:
		llmCfg.APIKey = cfg.GeminiAPIKey
		llm, err = adapters.NewGemini(ctx, llmCfg)
	default:
		llm, err = adapters.NewOpenAI(llmCfg)
	}
	if err != nil {
		log.Printf("completion provider %s unavailable: %v", cfg.Provider, err)
		return adapters.Unavailable{Err: err}
	}
	return llm
}

func waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
