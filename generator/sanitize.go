package generator

import (
	"regexp"
	"strings"
)

var (
	fenceOpen  = regexp.MustCompile("^```[a-zA-Z]*[ \t]*\n?")
	fenceClose = regexp.MustCompile("\n?[ \t]*```$")

	smartQuotes = strings.NewReplacer(
		"“", `"`, // left double quote
		"”", `"`, // right double quote
		"‘", "'", // left single quote
		"’", "'", // right single quote
	)
)

// Sanitize strips wrapping code fences, normalizes smart quotes to
// plain ASCII, and trims whitespace. It is a pure function and
// idempotent: sanitizing already-clean text is a no-op.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	s = fenceOpen.ReplaceAllString(s, "")
	s = fenceClose.ReplaceAllString(s, "")
	s = smartQuotes.Replace(s)
	return strings.TrimSpace(s)
}

// StripWrappingQuotes removes symmetric quotation marks models tend to
// wrap around short translations, so the literal lands in the template
// without stray quote characters.
func StripWrappingQuotes(s string) string {
	s = strings.TrimSpace(s)
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
			continue
		}
		break
	}
	return s
}
