package adapters

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// contentGenerator is the part of llms.Model the adapter relies on.
type contentGenerator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// LangChain adapts any langchaingo chat model to CompletionPort.
type LangChain struct {
	provider    string
	model       contentGenerator
	temperature float64
	maxTokens   int
}

func NewLangChain(provider string, model contentGenerator, cfg LLMConfig) *LangChain {
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &LangChain{
		provider:    provider,
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// NewOpenAI builds the default provider. An empty key makes langchaingo
// fall back to OPENAI_API_KEY and fail if that is empty too.
func NewOpenAI(cfg LLMConfig) (*LangChain, error) {
	cfg = cfg.withDefaults(DefaultOpenAIBaseURL, DefaultModel)
	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(cfg.BaseURL),
	}
	if cfg.APIKey != "" {
		opts = append(opts, openai.WithToken(cfg.APIKey))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	return NewLangChain("openai", llm, cfg), nil
}

func NewOllama(cfg LLMConfig) (*LangChain, error) {
	cfg = cfg.withDefaults(DefaultOllamaBaseURL, "llama3.1:8b")
	llm, err := ollama.New(
		ollama.WithModel(cfg.Model),
		ollama.WithServerURL(cfg.BaseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}
	return NewLangChain("ollama", llm, cfg), nil
}

func (l *LangChain) Complete(ctx context.Context, systemInstruction, userInstruction string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemInstruction),
		llms.TextParts(schema.ChatMessageTypeHuman, userInstruction),
	}

	resp, err := l.model.GenerateContent(ctx, messages,
		llms.WithTemperature(l.temperature),
		llms.WithMaxTokens(l.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", l.provider, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", errNoChoices(l.provider)
	}
	if resp.Choices[0].Content == "" {
		return "", errEmptyResponse(l.provider)
	}
	return resp.Choices[0].Content, nil
}
