package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderEmphasis(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold markers become strong tags",
			in:   "**Transform** Your Experience",
			want: "<strong>Transform</strong> Your Experience",
		},
		{
			name: "italic markers become em tags",
			in:   "Discover Your *True Potential*",
			want: "Discover Your <em>True Potential</em>",
		},
		{
			name: "existing html left alone",
			in:   "<p><strong>already html</strong></p>",
			want: "<p><strong>already html</strong></p>",
		},
		{
			name: "plain text left alone",
			in:   "No markers here",
			want: "No markers here",
		},
		{
			name: "mixed tags and markers left alone",
			in:   "Save on <strong>this</strong> **today**",
			want: "Save on <strong>this</strong> **today**",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderEmphasis(tt.in))
		})
	}
}
