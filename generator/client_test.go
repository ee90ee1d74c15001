package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront_copywriter/retry"
)

// flakyLLM fails a fixed number of times before succeeding.
type flakyLLM struct {
	failures int
	calls    int
}

func (f *flakyLLM) Complete(context.Context, Prompt) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("upstream unavailable")
	}
	return "  generated copy  ", nil
}

func testPolicy() retry.Config {
	return retry.Config{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond}
}

func newTestClient(t *testing.T, llm LLMClient) *Client {
	t.Helper()
	c, err := NewClient(llm, testPolicy(), 0, zap.NewNop().Sugar())
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresLLM(t *testing.T) {
	_, err := NewClient(nil, testPolicy(), 0, nil)
	assert.Error(t, err)
}

func TestGenerate_TrimsResult(t *testing.T) {
	c := newTestClient(t, &flakyLLM{})
	out, err := c.Generate(context.Background(), "prompt", 300, DefaultTemperature)
	require.NoError(t, err)
	assert.Equal(t, "generated copy", out)
}

func TestGenerate_RetriesTransientFailures(t *testing.T) {
	llm := &flakyLLM{failures: 2}
	c := newTestClient(t, llm)

	out, err := c.Generate(context.Background(), "prompt", 300, DefaultTemperature)
	require.NoError(t, err)
	assert.Equal(t, "generated copy", out)
	assert.Equal(t, 3, llm.calls)
}

func TestGenerate_ExhaustedAttemptsReturnErrGeneration(t *testing.T) {
	llm := &flakyLLM{failures: 10}
	c := newTestClient(t, llm)

	_, err := c.Generate(context.Background(), "prompt", 300, DefaultTemperature)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGeneration)
	assert.Equal(t, 3, llm.calls)
}

func TestGenerate_PassesSamplingParameters(t *testing.T) {
	llm := &ScriptedLLM{Responses: []string{"ok"}}
	c := newTestClient(t, llm)

	_, err := c.Generate(context.Background(), "prompt", 500, 0.2)
	require.NoError(t, err)
	require.Len(t, llm.Prompts, 1)
	assert.Equal(t, 500, llm.Prompts[0].MaxTokens)
	assert.InDelta(t, 0.2, llm.Prompts[0].Temperature, 1e-9)
}

func TestGenerate_EmptyResponseCountsAsSuccess(t *testing.T) {
	llm := &ScriptedLLM{Responses: []string{""}}
	c := newTestClient(t, llm)

	out, err := c.Generate(context.Background(), "prompt", 300, DefaultTemperature)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Len(t, llm.Prompts, 1)
}
