package generator

import (
	"context"
	"fmt"
	"strings"
)

const repairTemplate = `Fix this broken JSON and return ONLY valid JSON (no explanations, no markdown):

Context: %s
Broken JSON: %s

Rules:
- All keys must have double quotes
- All string values must have double quotes
- For HTML attributes (e.g., href, title), use single quotes (e.g., href='/path')
- Escape quotes inside strings with backslashes
- Ensure proper string termination to avoid unterminated string errors
- No trailing commas
- Ensure ALL the following keys are included: %s
- If a key is missing, provide a default value relevant to the context
- Return only the fixed JSON`

// RecoverJSON asks the model to repair a malformed JSON payload. The
// result is best-effort and never guaranteed to parse; callers must
// still attempt to decode it. When the repair call itself fails, the
// broken input is returned unchanged so transport failures do not
// masquerade as different content.
func (c *Client) RecoverJSON(ctx context.Context, broken, contextLabel string, expectedFields []string) string {
	keys := "None specified"
	if len(expectedFields) > 0 {
		keys = strings.Join(expectedFields, ", ")
	}
	prompt := fmt.Sprintf(repairTemplate, contextLabel, broken, keys)

	fixed, err := c.Generate(ctx, prompt, repairMaxTokens, RepairTemperature)
	if err != nil {
		c.log.Warnw("json repair call failed, keeping broken text",
			"context", contextLabel, "error", err)
		return broken
	}
	return Sanitize(fixed)
}
