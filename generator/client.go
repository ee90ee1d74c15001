package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"storefront_copywriter/retry"
)

// Default sampling parameters, matching the values the copy pipeline
// has always used: creative generation runs warm, JSON repair runs cold.
const (
	DefaultTemperature = 0.7
	RepairTemperature  = 0.1

	DefaultMaxTokens = 300
	repairMaxTokens  = 2000
)

// ErrGeneration marks a prompt whose completion failed on every attempt.
var ErrGeneration = errors.New("text generation failed")

// Client wraps an LLMClient with a retry policy and a per-attempt
// timeout. Any returned text counts as success; content validation is
// the caller's concern.
type Client struct {
	llm     LLMClient
	policy  retry.Config
	timeout time.Duration
	log     *zap.SugaredLogger
}

func NewClient(llm LLMClient, policy retry.Config, timeout time.Duration, log *zap.SugaredLogger) (*Client, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{llm: llm, policy: policy, timeout: timeout, log: log}, nil
}

// Generate submits one prompt and returns the trimmed completion text.
// maxTokens and temperature of zero defer to the provider defaults.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	var out string
	err := retry.Do(ctx, c.policy, func(ctx context.Context) error {
		if c.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}
		text, err := c.llm.Complete(ctx, Prompt{
			User:        prompt,
			MaxTokens:   maxTokens,
			Temperature: temperature,
		})
		if err != nil {
			c.log.Warnw("completion attempt failed", "error", err)
			return err
		}
		out = strings.TrimSpace(text)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return out, nil
}
