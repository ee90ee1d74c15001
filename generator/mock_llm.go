package generator

import (
	"context"
	"errors"
	"strings"
)

// MockLLM is an offline stand-in that never calls an external model.
// For prompts that embed a JSON skeleton it echoes that skeleton back,
// which keeps the object-shaped units parseable during local runs.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	user := prompt.User
	if open := strings.Index(user, "{"); open >= 0 {
		if end := strings.LastIndex(user, "}"); end > open {
			return user[open : end+1], nil
		}
	}
	return "Sample storefront copy", nil
}

// ScriptedLLM returns queued responses in order and records every
// prompt it sees. Tests use it to drive the pipeline deterministically.
type ScriptedLLM struct {
	Responses []string
	// Err is returned once Responses is exhausted; when nil a generic
	// exhaustion error is returned instead.
	Err     error
	Prompts []Prompt
}

func (m *ScriptedLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if len(m.Responses) == 0 {
		if m.Err != nil {
			return "", m.Err
		}
		return "", errors.New("scripted llm: no responses left")
	}
	next := m.Responses[0]
	m.Responses = m.Responses[1:]
	return next, nil
}
