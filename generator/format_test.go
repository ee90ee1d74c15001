package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoTagReference = "<p><strong>quote</strong></p>"

func TestGenerateWithShape_NoMarkupReferenceSingleCall(t *testing.T) {
	llm := &ScriptedLLM{Responses: []string{"plain heading"}}
	c := newTestClient(t, llm)

	out, err := c.GenerateWithShape(context.Background(), "prompt", "", 300)
	require.NoError(t, err)
	assert.Equal(t, "plain heading", out)
	assert.Len(t, llm.Prompts, 1)
	assert.NotContains(t, llm.Prompts[0].User, "HTML structure")
}

func TestGenerateWithShape_AcceptsFirstMatchingResult(t *testing.T) {
	llm := &ScriptedLLM{Responses: []string{"<p><strong>good</strong></p>", "never requested"}}
	c := newTestClient(t, llm)

	out, err := c.GenerateWithShape(context.Background(), "prompt", twoTagReference, 300)
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>good</strong></p>", out)
	assert.Len(t, llm.Prompts, 1)
	assert.Contains(t, llm.Prompts[0].User, twoTagReference)
}

func TestGenerateWithShape_RetriesUntilTagCountReached(t *testing.T) {
	// Tag counts increase across calls: 0, 2, 4 against a reference of 4.
	llm := &ScriptedLLM{Responses: []string{
		"no tags at all",
		"<p>two</p>",
		"<p><strong>four</strong></p>",
	}}
	c := newTestClient(t, llm)

	reference := "<p><strong>quote</strong></p>" // 4 tags
	out, err := c.GenerateWithShape(context.Background(), "prompt", reference, 300)
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>four</strong></p>", out)
	assert.Len(t, llm.Prompts, 3)

	// Each rejected attempt appends the corrective instruction.
	assert.Equal(t, 1, strings.Count(llm.Prompts[1].User, structureNudge))
	assert.Equal(t, 2, strings.Count(llm.Prompts[2].User, structureNudge))
}

func TestGenerateWithShape_ReturnsLastResultAfterBudget(t *testing.T) {
	llm := &ScriptedLLM{Responses: []string{"bad one", "bad two", "bad three", "never requested"}}
	c := newTestClient(t, llm)

	out, err := c.GenerateWithShape(context.Background(), "prompt", twoTagReference, 300)
	require.NoError(t, err)
	assert.Equal(t, "bad three", out)
	assert.Len(t, llm.Prompts, 3, "validation must stop at the attempt budget")
}

func TestGenerateWithShape_MoreTagsThanReferencePasses(t *testing.T) {
	llm := &ScriptedLLM{Responses: []string{"<h1>a</h1><p><em>b</em></p>"}}
	c := newTestClient(t, llm)

	out, err := c.GenerateWithShape(context.Background(), "prompt", "<p>x</p>", 300)
	require.NoError(t, err)
	assert.Equal(t, "<h1>a</h1><p><em>b</em></p>", out)
	assert.Len(t, llm.Prompts, 1)
}

func TestGenerateWithShape_GenerationFailurePropagates(t *testing.T) {
	llm := &ScriptedLLM{} // exhausted immediately
	c := newTestClient(t, llm)

	_, err := c.GenerateWithShape(context.Background(), "prompt", twoTagReference, 300)
	assert.ErrorIs(t, err, ErrGeneration)
}
