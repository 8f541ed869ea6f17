package store

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/promptpaste/pkg/errors"
	"github.com/arthur-debert/promptpaste/pkg/filesystem"
)

// DefaultPreviewWidth is the first-line width used when none is configured
const DefaultPreviewWidth = 64

// PreviewItem is one line of the storage listing
type PreviewItem struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Depth int    `json:"depth"`
	IsDir bool   `json:"isDir"`

	// Readable is false when the file could not be read; only Name is set
	Readable  bool   `json:"readable"`
	Size      int64  `json:"size,omitempty"`
	Lines     int    `json:"lines,omitempty"`
	Chars     int    `json:"chars,omitempty"`
	FirstLine string `json:"firstLine,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
}

// Preview walks the storage root depth-first. In every directory folders
// come before files, each group sorted by name. width bounds the first
// line shown for each file; values below one use DefaultPreviewWidth.
func (s *Store) Preview(width int) ([]PreviewItem, error) {
	if width < 1 {
		width = DefaultPreviewWidth
	}
	if err := s.EnsureRoot(); err != nil {
		return nil, err
	}

	var items []PreviewItem
	if err := s.preview(s.root, 0, width, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) preview(dir string, depth, width int, items *[]PreviewItem) error {
	dirEntries, err := s.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", dir)
	}
	sort.Slice(dirEntries, func(i, j int) bool {
		if dirEntries[i].IsDir() != dirEntries[j].IsDir() {
			return dirEntries[i].IsDir()
		}
		return dirEntries[i].Name() < dirEntries[j].Name()
	})

	for _, de := range dirEntries {
		path := filepath.Join(dir, de.Name())
		if de.IsDir() {
			*items = append(*items, PreviewItem{Name: de.Name(), Path: path, Depth: depth, IsDir: true, Readable: true})
			if err := s.preview(path, depth+1, width, items); err != nil {
				return err
			}
			continue
		}
		*items = append(*items, s.previewFile(path, de.Name(), depth, width))
	}
	return nil
}

func (s *Store) previewFile(path, name string, depth, width int) PreviewItem {
	item := PreviewItem{Name: name, Path: path, Depth: depth}

	content, err := filesystem.ReadText(s.fs, path)
	if err != nil {
		s.logger.Debug().Err(err).Str("path", path).Msg("Listing unreadable file by name only")
		return item
	}

	item.Readable = true
	if info, err := s.fs.Stat(path); err == nil {
		item.Size = info.Size()
	}
	item.Lines = strings.Count(content, "\n") + 1
	item.Chars = utf8.RuneCountInString(content)
	item.FirstLine, item.Truncated = firstLine(content, width)
	return item
}

// firstLine returns the trimmed first line of content, cut to width code
// points with "..." appended when longer
func firstLine(content string, width int) (string, bool) {
	line, _, _ := strings.Cut(content, "\n")
	line = strings.TrimSpace(line)

	runes := []rune(line)
	if len(runes) <= width {
		return line, false
	}
	return string(runes[:width]) + "...", true
}
