package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// LLM talks to any OpenAI-compatible chat completions endpoint over plain HTTP.
type LLM struct {
	client *http.Client
	cfg    LLMConfig
}

func NewLLM(cfg LLMConfig) *LLM {
	cfg = cfg.withDefaults(DefaultOpenAIBaseURL, DefaultModel)
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	return &LLM{
		// No timeout: the caller's context is the only deadline.
		client: &http.Client{},
		cfg:    cfg,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (a *LLM) Complete(ctx context.Context, systemInstruction, userInstruction string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: a.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: userInstruction},
		},
		Temperature: a.cfg.Temperature,
		MaxTokens:   a.cfg.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upstream unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", statusError(resp)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("malformed upstream response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errNoChoices("upstream")
	}
	if out.Choices[0].Message.Content == "" {
		return "", errEmptyResponse("upstream")
	}
	return out.Choices[0].Message.Content, nil
}

// statusError keeps the provider's own message when it sends one.
func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	var e apiError
	if json.Unmarshal(raw, &e) == nil && e.Error.Message != "" {
		return fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, e.Error.Message)
	}
	return fmt.Errorf("upstream returned status: %d", resp.StatusCode)
}
