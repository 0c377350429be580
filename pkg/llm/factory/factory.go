package factory

import (
	"fmt"

	"mobile-order-be/pkg/llm"
	"mobile-order-be/pkg/llm/ollama"
)

// NewLLMProvider builds the configured provider. "none" (or empty) returns a
// nil provider; callers treat that as phrasing disabled.
func NewLLMProvider(providerType, modelName, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "", "none":
		return nil, nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
