package generator

import (
	"context"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

const (
	shapeAttempts = 3

	structureHint  = "\n\nIMPORTANT: Maintain the exact HTML structure from this example: "
	structureNudge = "\n\nPlease maintain the HTML tags structure exactly as shown in the example."
)

// GenerateWithShape generates text and, when the reference example
// carries markup, keeps regenerating until the result contains at
// least as many tags as the reference or the attempt budget is spent.
// Validation failure is never fatal: after the last attempt the last
// result is returned and a warning is logged.
//
// The check is a tag-count comparison only. It does not inspect tag
// names or nesting, so a result with the right count of unrelated tags
// passes.
func (c *Client) GenerateWithShape(ctx context.Context, prompt, reference string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if !strings.Contains(reference, "<") {
		return c.Generate(ctx, prompt, maxTokens, DefaultTemperature)
	}

	want := len(tagPattern.FindAllString(reference, -1))
	prompt += structureHint + reference

	var result string
	for attempt := 1; attempt <= shapeAttempts; attempt++ {
		var err error
		result, err = c.Generate(ctx, prompt, maxTokens, DefaultTemperature)
		if err != nil {
			return "", err
		}
		got := len(tagPattern.FindAllString(result, -1))
		if got >= want {
			return result, nil
		}
		c.log.Warnw("generated output dropped markup tags",
			"want", want, "got", got, "attempt", attempt)
		prompt += structureNudge
	}
	return result, nil
}
