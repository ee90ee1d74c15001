package generator

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverJSON_RepairPromptCarriesContext(t *testing.T) {
	llm := &ScriptedLLM{Responses: []string{`{"heading":"Titre","text":"Souris"}`}}
	c := newTestClient(t, llm)

	broken := `{"heading": "Titre", "text": Souris}`
	fixed := c.RecoverJSON(context.Background(), broken, "newsletter", []string{"heading", "text"})

	assert.Equal(t, `{"heading":"Titre","text":"Souris"}`, fixed)
	require.Len(t, llm.Prompts, 1)
	prompt := llm.Prompts[0]
	assert.Contains(t, prompt.User, "Context: newsletter")
	assert.Contains(t, prompt.User, broken)
	assert.Contains(t, prompt.User, "heading, text")
	assert.InDelta(t, RepairTemperature, prompt.Temperature, 1e-9)
}

func TestRecoverJSON_SanitizesFencedRepair(t *testing.T) {
	llm := &ScriptedLLM{Responses: []string{"```json\n{\"heading\":\"Titre\"}\n```"}}
	c := newTestClient(t, llm)

	fixed := c.RecoverJSON(context.Background(), "{broken", "newsletter", []string{"heading"})

	var obj map[string]string
	require.NoError(t, json.Unmarshal([]byte(fixed), &obj))
	assert.Equal(t, "Titre", obj["heading"])
}

func TestRecoverJSON_TransportFailureReturnsInputUnchanged(t *testing.T) {
	llm := &ScriptedLLM{} // every call errors
	c := newTestClient(t, llm)

	broken := `{"heading": broken}`
	fixed := c.RecoverJSON(context.Background(), broken, "newsletter", nil)
	assert.Equal(t, broken, fixed)
}

func TestRecoverJSON_NoExpectedFields(t *testing.T) {
	llm := &ScriptedLLM{Responses: []string{"{}"}}
	c := newTestClient(t, llm)

	c.RecoverJSON(context.Background(), "{", "label", nil)
	require.Len(t, llm.Prompts, 1)
	assert.Contains(t, llm.Prompts[0].User, "None specified")
}
