package generator

import "context"

// LLMClient abstracts the text-completion capability so providers can
// be swapped or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// Prompt is one completion request. MaxTokens and Temperature of zero
// leave the provider defaults in place.
type Prompt struct {
	User        string
	MaxTokens   int
	Temperature float64
}

// LLMSettings carries the base configuration for concrete
// implementations. Provider selection happens before construction, so
// it is not part of these settings.
type LLMSettings struct {
	Model   string
	APIKey  string
	BaseURL string
}
