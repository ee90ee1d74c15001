package generator

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
)

// RenderEmphasis converts markdown emphasis markers in a tag-free
// fragment into HTML. Models asked for HTML headings frequently answer
// with **bold** and *italic* instead; storefront templates need real
// <strong>/<em> tags. Fragments already carrying tags are left alone.
func RenderEmphasis(s string) string {
	if strings.Contains(s, "<") || !strings.Contains(s, "*") {
		return s
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(s), &buf); err != nil {
		return s
	}
	out := strings.TrimSpace(buf.String())

	// Single-paragraph input comes back wrapped in one <p> element;
	// unwrap it so the fragment can live inside any template slot.
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out
}
