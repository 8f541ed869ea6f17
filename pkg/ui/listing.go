package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/promptpaste/pkg/store"
	"github.com/arthur-debert/promptpaste/pkg/ui/styles"
	"github.com/dustin/go-humanize"
)

// painter decorates text with a named style
type painter func(style, text string) string

func plain(_ string, text string) string { return text }

// textRenderer writes the listing without any styling
type textRenderer struct {
	output io.Writer
	paint  painter
}

func newTextRenderer(w io.Writer) *textRenderer {
	return &textRenderer{output: w, paint: plain}
}

// newTerminalRenderer shares the text layout and colors it with the style
// registry
func newTerminalRenderer(w io.Writer) *textRenderer {
	return &textRenderer{output: w, paint: styles.Render}
}

func (r *textRenderer) RenderListing(items []store.PreviewItem) error {
	var b strings.Builder
	for _, item := range items {
		prefix := strings.Repeat("  ", item.Depth)
		switch {
		case item.IsDir:
			fmt.Fprintf(&b, "%s%s\n\n", prefix, r.paint("Folder", "[DIR] "+item.Name+"/"))
		case !item.Readable:
			fmt.Fprintf(&b, "%s%s\n\n", prefix, r.paint("EntryName", "> "+item.Name))
		default:
			fmt.Fprintf(&b, "%s%s\n", prefix, r.paint("EntryName", "> "+item.Name))
			stats := fmt.Sprintf("  (lines: %d, chars: %d, %s)", item.Lines, item.Chars, humanize.Bytes(uint64(item.Size)))
			fmt.Fprintf(&b, "%s%s\n", prefix, r.paint("Stats", stats))
			if item.FirstLine != "" {
				fmt.Fprintf(&b, "%s%s\n", prefix, r.paint("Preview", "  "+item.FirstLine))
			}
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.paint("Info", msg))
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.paint("Error", "Error: "+err.Error()))
	return werr
}

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(w io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

func (r *jsonRenderer) RenderListing(items []store.PreviewItem) error {
	if items == nil {
		items = []store.PreviewItem{}
	}
	return r.encoder.Encode(items)
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}
