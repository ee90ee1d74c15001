package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Hello world", "Hello world"},
		{"trims whitespace", "  padded  \n", "padded"},
		{"strips bare fences", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"strips json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"strips html fence", "```html\n<p>hi</p>\n```", "<p>hi</p>"},
		{"smart double quotes", "“quoted”", `"quoted"`},
		{"smart apostrophe", "it’s", "it's"},
		{"empty input", "", ""},
		{"fence only", "```", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"heading\": “Titre”}\n```",
		"plain",
		"  spaced  ",
		"```html\n<p>x</p>\n```",
		"",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "sanitize must be idempotent for %q", in)
	}
}

func TestStripWrappingQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"Einkaufen"`, "Einkaufen"},
		{"'Einkaufen'", "Einkaufen"},
		{`""Einkaufen""`, "Einkaufen"},
		{`Einkaufen`, "Einkaufen"},
		{`Say "hello" there`, `Say "hello" there`}, // interior quotes stay
		{`"`, `"`},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripWrappingQuotes(tt.in), "input %q", tt.in)
	}
}
