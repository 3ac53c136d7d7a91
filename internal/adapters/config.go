package adapters

import "fmt"

// Defaults used when a provider is built without explicit settings.
const (
	DefaultModel       = "gpt-4"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000

	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOllamaBaseURL = "http://localhost:11434"
)

// LLMConfig holds the fixed generation settings of a completion adapter.
type LLMConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

func (c LLMConfig) withDefaults(baseURL, model string) LLMConfig {
	if c.BaseURL == "" {
		c.BaseURL = baseURL
	}
	if c.Model == "" {
		c.Model = model
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	return c
}

func errNoChoices(provider string) error {
	return fmt.Errorf("%s: no choices in response", provider)
}

// An empty completion is an upstream failure for every provider.
func errEmptyResponse(provider string) error {
	return fmt.Errorf("%s: empty response", provider)
}
