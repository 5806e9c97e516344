package llm

import (
	"context"
	"fmt"
)

// NewProvider builds a Provider for the named backend. Names match the
// provider values accepted in model config blocks.
func NewProvider(ctx context.Context, name, apiKey string) (Provider, error) {
	switch name {
	case "groq":
		return NewGroqProvider(apiKey), nil
	case "openai":
		return NewOpenAIProvider(apiKey), nil
	case "anthropic":
		return NewAnthropicProvider(apiKey), nil
	case "gemini":
		return NewGeminiProvider(ctx, apiKey)
	default:
		return nil, fmt.Errorf("unknown provider '%s'", name)
	}
}
