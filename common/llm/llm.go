package llm

import (
	"context"
	"errors"
	"fmt"
)

// Provider constants for LLM provider selection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrNoChoices is returned when the upstream answers without any completion text.
// Null and empty content both count as no completion.
var ErrNoChoices = errors.New("no choices in response")

// Config holds LLM client configuration.
type Config struct {
	Provider  string // "openai" or "anthropic"; defaults to openai
	APIKey    string // Required: API key for the provider
	BaseURL   string // Optional: custom API endpoint
	Model     string // Model name (e.g., "gpt-4o-mini", "claude-sonnet-4-5")
	MaxTokens int    // Optional: default completion budget
}

// Client sends a single, non-streaming chat completion.
// Implementations never retry; a failed call is returned to the caller as is.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	Provider() string
	Model() string
}

// Message represents a conversation turn.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

type CompletionRequest struct {
	Messages    []Message
	MaxTokens   int      // 0 = client default
	Temperature *float64 // nil = model default
}

// CompletionResponse carries the first candidate only.
type CompletionResponse struct {
	Content          string
	FinishReason     string // "stop", "length", ...
	PromptTokens     int
	CompletionTokens int
}

// New creates a Client for cfg.Provider.
func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAIClient(cfg), nil
	case ProviderAnthropic:
		return newAnthropicClient(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}
