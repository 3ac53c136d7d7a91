package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini implements CompletionPort with Google's Generative AI SDK.
type Gemini struct {
	client *genai.Client
	model  string
	config genai.GenerationConfig
}

func NewGemini(ctx context.Context, cfg LLMConfig) (*Gemini, error) {
	cfg = cfg.withDefaults("", "gemini-1.5-flash")

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	g := &Gemini{client: client, model: cfg.Model}
	g.config.SetTemperature(float32(cfg.Temperature))
	g.config.SetMaxOutputTokens(int32(cfg.MaxTokens))
	return g, nil
}

func (g *Gemini) Complete(ctx context.Context, systemInstruction, userInstruction string) (string, error) {
	// GenerativeModel is mutable, so each call gets its own.
	model := g.client.GenerativeModel(g.model)
	model.GenerationConfig = g.config
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}

	resp, err := model.GenerateContent(ctx, genai.Text(userInstruction))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return geminiText(resp)
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errNoChoices("gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", errEmptyResponse("gemini")
	}
	return b.String(), nil
}
