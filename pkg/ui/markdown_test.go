package ui_test

import (
	"testing"

	"github.com/arthur-debert/promptpaste/pkg/ui"
	"github.com/stretchr/testify/assert"
)

func TestIsMarkdown(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"review.md", true},
		{"notes/README.MD", true},
		{"doc.markdown", true},
		{"prompt.txt", false},
		{"md", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ui.IsMarkdown(tt.path))
		})
	}
}

func TestMarkdownRenderer(t *testing.T) {
	content := "# Title\n\nSome *body* text.\n"

	t.Run("non markdown passes through", func(t *testing.T) {
		r := ui.NewMarkdownRenderer()
		assert.Equal(t, content, r.Render(content, "prompt.txt"))
	})

	t.Run("markdown is rendered", func(t *testing.T) {
		r := &ui.MarkdownRenderer{Style: "notty", Width: 40}
		out := r.Render(content, "prompt.md")
		assert.NotEqual(t, content, out)
		assert.Contains(t, out, "Title")
		assert.Contains(t, out, "body")
	})

	t.Run("bad style falls back to raw content", func(t *testing.T) {
		r := &ui.MarkdownRenderer{Style: "/nonexistent/style.json"}
		assert.Equal(t, content, r.Render(content, "prompt.md"))
	})
}
