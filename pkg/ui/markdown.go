package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown entries for the terminal
type MarkdownRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a path to a style file
	Width int    // word wrap width, 0 leaves glamour's default
}

// NewMarkdownRenderer creates a renderer that picks its style from the
// terminal background
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// IsMarkdown reports whether path names a markdown file
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// Render returns content rendered as markdown when path is a markdown
// file. Anything else, and any rendering failure, returns content as is.
func (r *MarkdownRenderer) Render(content, path string) string {
	if !IsMarkdown(path) {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
