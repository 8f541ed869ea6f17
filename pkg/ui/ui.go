// Package ui renders pp output as styled terminal text, plain text or JSON.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/promptpaste/pkg/store"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderListing renders the storage preview tree
	RenderListing(items []store.PreviewItem) error

	// RenderMessage renders a user-facing notice
	RenderMessage(msg string) error

	// RenderError renders an error as "Error: <message>"
	RenderError(err error) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output:
// terminals get styled output, anything else plain text.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(Resolve(format, output), output)
	case FormatTerminal:
		return newTerminalRenderer(output), nil
	case FormatText:
		return newTextRenderer(output), nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// Resolve turns FormatAuto into a concrete format for output. Other
// formats are returned unchanged.
func Resolve(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}
